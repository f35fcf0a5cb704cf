//go:build unit
// +build unit

package v1

import (
	"testing"

	"lecture_note_service/internal/domain/summaries"

	"github.com/stretchr/testify/require"
)

func TestUpdateKeyPointsRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   UpdateKeyPointsRequest
		shouldErr bool
	}{
		{"Valid single point", UpdateKeyPointsRequest{KeyPoints: []string{"분산 시스템의 정의"}}, false},
		{"Valid empty list", UpdateKeyPointsRequest{KeyPoints: []string{}}, false},
		{"Missing key_points", UpdateKeyPointsRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestUpdateQARequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   UpdateQARequest
		shouldErr bool
	}{
		{"Valid item", UpdateQARequest{Items: []*summaries.QAItem{{Question: "리더 선출은?", Answer: "Raft"}}}, false},
		{"Valid item with timestamp", UpdateQARequest{Items: []*summaries.QAItem{{Question: "언제였죠?", Answer: "후반부", Timestamp: "1:23:45"}}}, false},
		{"Invalid timestamp", UpdateQARequest{Items: []*summaries.QAItem{{Question: "언제였죠?", Answer: "후반부", Timestamp: "ninety minutes"}}}, true},
		{"Valid empty list", UpdateQARequest{Items: []*summaries.QAItem{}}, false},
		{"Missing items", UpdateQARequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestUpdateTakeawaysRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   UpdateTakeawaysRequest
		shouldErr bool
	}{
		{"Valid list", UpdateTakeawaysRequest{Takeaways: []string{"핵심 정리"}}, false},
		{"Valid empty list", UpdateTakeawaysRequest{Takeaways: []string{}}, false},
		{"Missing takeaways", UpdateTakeawaysRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

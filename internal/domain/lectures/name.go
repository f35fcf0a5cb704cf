package lectures

import (
	"fmt"
	"strconv"
	"strings"
)

// LectureInfo is the structured form of a lecture folder name.
// The convention is "NN-speaker-topic-YYMMDD"; topics may themselves
// contain dashes, so the topic spans everything between the speaker and
// the trailing date segment.
type LectureInfo struct {
	Number  string
	Speaker string
	Topic   string
	RawDate string
}

// ParseLectureName splits a folder name into its lecture info parts.
// Names with fewer than four segments degrade to topic-only info.
func ParseLectureName(name string) LectureInfo {
	parts := strings.Split(name, "-")
	if len(parts) < 4 {
		return LectureInfo{Topic: name}
	}

	return LectureInfo{
		Number:  parts[0],
		Speaker: parts[1],
		Topic:   strings.Join(parts[2:len(parts)-1], "-"),
		RawDate: parts[len(parts)-1],
	}
}

// FormattedDate renders the raw YYMMDD date as "2026년 2월 6일".
// Unparseable dates are returned as-is.
func (i LectureInfo) FormattedDate() string {
	year, month, day, ok := i.dateParts()
	if !ok {
		return i.RawDate
	}
	return fmt.Sprintf("%d년 %d월 %d일", year, month, day)
}

// DottedDate renders the raw YYMMDD date as "2026.02.06" for index listings.
// Unparseable dates are returned as-is.
func (i LectureInfo) DottedDate() string {
	year, month, day, ok := i.dateParts()
	if !ok {
		return i.RawDate
	}
	return fmt.Sprintf("%04d.%02d.%02d", year, month, day)
}

func (i LectureInfo) dateParts() (year, month, day int, ok bool) {
	if len(i.RawDate) != 6 {
		return 0, 0, 0, false
	}
	yy, err1 := strconv.Atoi(i.RawDate[:2])
	mm, err2 := strconv.Atoi(i.RawDate[2:4])
	dd, err3 := strconv.Atoi(i.RawDate[4:6])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return 2000 + yy, mm, dd, true
}

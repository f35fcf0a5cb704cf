package transcripts

// Parser turns raw STT export text into a transcript.
type Parser interface {
	// Parse detects the export format and parses it.
	Parse(raw string) (*Transcript, error)
	// Merge concatenates transcripts in order, offsetting each file's
	// timestamps by the cumulative length of the files before it.
	Merge(parts []*Transcript) *Transcript
}

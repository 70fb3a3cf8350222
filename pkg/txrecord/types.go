// Package txrecord generates and reads transaction records: text documents made
// of critical sections, each a run of signed amounts bracketed by R and W lines.
package txrecord

// Markers that open and close a critical section
const (
	BeginMarker = "R"
	EndMarker   = "W"
)

// Fixed generation ranges. Counts are inclusive, amounts are [MinAmount, MaxAmount).
const (
	MinSections     = 5
	MaxSections     = 10
	MinTransactions = 1
	MaxTransactions = 7
	MinAmount       = -500.0
	MaxAmount       = 500.0
)

// Transaction is a single signed amount within a section.
type Transaction float64

// Section is an ordered run of transactions between R and W.
type Section []Transaction

// Document is the rendered text of one or more sections.
type Document string

// Render renders the section as R, one line per transaction, then W.
func (s Section) Render() string {
	buf := make([]byte, 0, 4+len(s)*9)
	buf = append(buf, BeginMarker+"\n"...)
	for _, t := range s {
		buf = append(buf, FormatTransaction(float64(t))...)
		buf = append(buf, '\n')
	}
	buf = append(buf, EndMarker+"\n"...)
	return string(buf)
}

// Sum returns the net change applied by the section
func (s Section) Sum() float64 {
	var sum float64
	for _, t := range s {
		sum += float64(t)
	}
	return sum
}

// Render concatenates sections in order with no separators.
func Render(sections []Section) Document {
	var doc []byte
	for _, s := range sections {
		doc = append(doc, s.Render()...)
	}
	return Document(doc)
}

package txrecord

import "io"

// Generator draws critical sections from a Source
type Generator struct {
	src Source
}

// New returns a Generator that draws from src
func New(src Source) *Generator {
	return &Generator{src: src}
}

// Generate builds a document from the process-wide random source.
func Generate() Document {
	return New(NewSource(nil)).Generate()
}

// Sections draws between MinSections and MaxSections sections, each holding
// between MinTransactions and MaxTransactions amounts.
func (g *Generator) Sections() []Section {
	count := g.src.IntRange(MinSections, MaxSections)
	sections := make([]Section, 0, count)
	for range count {
		n := g.src.IntRange(MinTransactions, MaxTransactions)
		section := make(Section, 0, n)
		for range n {
			section = append(section, Transaction(g.src.FloatRange(MinAmount, MaxAmount)))
		}
		sections = append(sections, section)
	}
	return sections
}

// Generate draws a fresh set of sections and renders them.
func (g *Generator) Generate() Document {
	return Render(g.Sections())
}

// WriteTo generates a document and writes it to w
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(g.Generate()))
	return int64(n), err
}

package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/pbirview"
)

// StyleFromPalette returns a function that maps chroma token types to
// pbirview styles based on the palette colors.
func StyleFromPalette(p pbirview.Palette) StyleFunc {
	return func(tt chromalib.TokenType) pbirview.Style {
		switch {
		case tt == chromalib.GenericHeading, tt == chromalib.GenericSubheading:
			return pbirview.Style{Foreground: string(p.Heading), Bold: true}
		case tt == chromalib.GenericStrong:
			return pbirview.Style{Foreground: string(p.Emphasis), Bold: true}
		case tt == chromalib.GenericEmph:
			return pbirview.Style{Foreground: string(p.Emphasis)}
		case tt == chromalib.GenericInserted:
			return pbirview.Style{Foreground: string(p.Added)}
		case tt == chromalib.GenericDeleted:
			return pbirview.Style{Foreground: string(p.Deleted)}
		case tt.InCategory(chromalib.Comment):
			return pbirview.Style{Foreground: string(p.Comment)}
		case tt.InSubCategory(chromalib.LiteralString):
			return pbirview.Style{Foreground: string(p.Code)}
		case tt.InCategory(chromalib.Name):
			return pbirview.Style{Foreground: string(p.Link)}
		case tt.InCategory(chromalib.Keyword):
			return pbirview.Style{Foreground: string(p.Heading)}
		}
		return pbirview.Style{}
	}
}

package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// arabicReplacer collapses the hamza-carrier alef forms onto bare alef and
// folds taa marbuta and alef maqsura onto their unmarked counterparts. This
// deliberately narrow table matches how shoppers type queries; full diacritic
// stripping is out of scope.
var arabicReplacer = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ة", "ه",
	"ى", "ي",
)

var folder = cases.Fold()

// Fold case-folds the input for caseless comparison.
func Fold(s string) string {
	return folder.String(s)
}

// NormalizeArabic case-folds the input and applies the restricted Arabic
// normalization pass. Safe on mixed or non-Arabic text: the replacement
// table only touches Arabic letters.
func NormalizeArabic(s string) string {
	return arabicReplacer.Replace(Fold(s))
}

package models

import "strings"

// DocumentType describes an identity document kind and its validation rules.
type DocumentType struct {
	Code        string
	Length      int
	NumericOnly bool
}

// Known document types, in declared order.
var documentTypes = []DocumentType{
	{Code: "DNI", Length: 8, NumericOnly: true},
	{Code: "RUC", Length: 11, NumericOnly: true},
	{Code: "FOREIGNERS_CARD", Length: 12, NumericOnly: false},
	{Code: "PASSPORT", Length: 15, NumericOnly: false},
}

// DocumentTypeFromCode looks up a document type by its code (case-insensitive).
func DocumentTypeFromCode(code string) (DocumentType, bool) {
	for _, t := range documentTypes {
		if strings.EqualFold(t.Code, code) {
			return t, true
		}
	}
	return DocumentType{}, false
}

// IsValidDocumentType checks if the code matches a known document type
func IsValidDocumentType(code string) bool {
	_, ok := DocumentTypeFromCode(code)
	return ok
}

// DocumentTypeCodes returns the known document type codes in declared order.
func DocumentTypeCodes() []string {
	codes := make([]string, len(documentTypes))
	for i, t := range documentTypes {
		codes[i] = t.Code
	}
	return codes
}

// ValidLength checks if the document number has the exact length required by the type.
func (t DocumentType) ValidLength(number string) bool {
	return len(number) == t.Length
}

// ValidFormat checks if the document number matches the character set of the type.
// DNI and RUC must be digits only; the rest accept ASCII letters and digits.
func (t DocumentType) ValidFormat(number string) bool {
	if strings.TrimSpace(number) == "" {
		return false
	}
	for _, r := range number {
		switch {
		case r >= '0' && r <= '9':
		case !t.NumericOnly && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
		default:
			return false
		}
	}
	return true
}

// ValidDocument performs the full validation: length and format.
func (t DocumentType) ValidDocument(number string) bool {
	return t.ValidLength(number) && t.ValidFormat(number)
}

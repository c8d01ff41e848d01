package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentTypeFromCode(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantOK     bool
		wantLength int
	}{
		{name: "DNI exact case", code: "DNI", wantOK: true, wantLength: 8},
		{name: "DNI lower case", code: "dni", wantOK: true, wantLength: 8},
		{name: "RUC mixed case", code: "Ruc", wantOK: true, wantLength: 11},
		{name: "foreigners card", code: "FOREIGNERS_CARD", wantOK: true, wantLength: 12},
		{name: "passport", code: "passport", wantOK: true, wantLength: 15},
		{name: "unknown code", code: "DRIVER_LICENSE", wantOK: false},
		{name: "empty code", code: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docType, ok := DocumentTypeFromCode(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLength, docType.Length)
			}
			assert.Equal(t, tt.wantOK, IsValidDocumentType(tt.code))
		})
	}
}

func TestDocumentTypeCodes(t *testing.T) {
	assert.Equal(t, []string{"DNI", "RUC", "FOREIGNERS_CARD", "PASSPORT"}, DocumentTypeCodes())
}

func TestDocumentValidation(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		number      string
		validLength bool
		validFormat bool
	}{
		{name: "valid DNI", code: "DNI", number: "12345678", validLength: true, validFormat: true},
		{name: "DNI too short", code: "DNI", number: "1234567", validLength: false, validFormat: true},
		{name: "DNI too long", code: "DNI", number: "123456789", validLength: false, validFormat: true},
		{name: "DNI with letter", code: "DNI", number: "1234567A", validLength: true, validFormat: false},
		{name: "DNI empty", code: "DNI", number: "", validLength: false, validFormat: false},
		{name: "DNI blank", code: "DNI", number: "        ", validLength: true, validFormat: false},
		{name: "valid RUC", code: "RUC", number: "20123456789", validLength: true, validFormat: true},
		{name: "RUC with letters", code: "RUC", number: "2012345678X", validLength: true, validFormat: false},
		{name: "valid passport", code: "PASSPORT", number: "AB1234567890123", validLength: true, validFormat: true},
		{name: "passport too short", code: "PASSPORT", number: "AB12345678901", validLength: false, validFormat: true},
		{name: "passport with symbol", code: "PASSPORT", number: "AB123456789012-", validLength: true, validFormat: false},
		{name: "valid foreigners card", code: "FOREIGNERS_CARD", number: "CE1234567890", validLength: true, validFormat: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docType, ok := DocumentTypeFromCode(tt.code)
			require.True(t, ok)

			assert.Equal(t, tt.validLength, docType.ValidLength(tt.number), "ValidLength")
			assert.Equal(t, tt.validFormat, docType.ValidFormat(tt.number), "ValidFormat")

			// Full validation is always the conjunction of the two stages.
			assert.Equal(t, tt.validLength && tt.validFormat, docType.ValidDocument(tt.number))
		})
	}
}

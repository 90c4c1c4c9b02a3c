package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressRecord_Value(t *testing.T) {
	rec := AddressRecord{
		PropertyName: "Oakview Commons",
		AddressLine:  "100 Main St",
		City:         "Springfield",
		Zip:          "62701",
	}

	assert.Equal(t, "100 Main St", rec.Value(FieldAddressLine))
	assert.Equal(t, "Springfield", rec.Value(FieldCity))
	assert.Equal(t, "62701", rec.Value(FieldZip))
	assert.Equal(t, "", rec.Value(Field(42)))
}

func TestField_Caption(t *testing.T) {
	var captions []string
	for _, f := range CopyableFields {
		captions = append(captions, f.Caption())
	}
	assert.Equal(t, []string{"Copy Line One", "Copy City", "Copy Zip"}, captions)
}

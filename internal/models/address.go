package models

// AddressRecord is one row of the developments sheet. Values are kept
// verbatim and never mutated after loading.
type AddressRecord struct {
	PropertyName string
	AddressLine  string
	City         string
	Zip          string
}

// Field identifies one copyable column of an AddressRecord
type Field int

const (
	FieldAddressLine Field = iota
	FieldCity
	FieldZip
)

// Header names as they appear in the CSV
const (
	ColumnPropertyName = "Property Name"
	ColumnAddressLine  = "Line One"
	ColumnCity         = "City"
	ColumnZip          = "Zip"
)

// CopyableFields lists the fields that get a copy button, in display order
var CopyableFields = []Field{FieldAddressLine, FieldCity, FieldZip}

// Column returns the CSV header name for the field
func (f Field) Column() string {
	switch f {
	case FieldAddressLine:
		return ColumnAddressLine
	case FieldCity:
		return ColumnCity
	case FieldZip:
		return ColumnZip
	default:
		return "Unknown"
	}
}

// Caption is the button text for the field
func (f Field) Caption() string {
	return "Copy " + f.Column()
}

func (f Field) String() string {
	return f.Column()
}

// Value returns the record's text for the given field
func (r AddressRecord) Value(f Field) string {
	switch f {
	case FieldAddressLine:
		return r.AddressLine
	case FieldCity:
		return r.City
	case FieldZip:
		return r.Zip
	default:
		return ""
	}
}

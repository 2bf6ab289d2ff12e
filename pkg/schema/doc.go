// Package schema describes the shape of a record type.
//
// It owns the naming rules every generated record type follows (field
// identifiers and constant-style type names) and a small value type system
// that can optionally constrain what each field accepts.
//
// Field and type names:
//
//	schema.IsIdentifier("created_at") // true
//	schema.IsIdentifier("1st")        // false
//	schema.IsConstantName("Point3D")  // true
//	schema.IsConstantName("point")    // false
//
// Value constraints map field names to types:
//
//	s := schema.Schema{
//	    "id":   schema.Int(),
//	    "tags": schema.Slice(schema.String()),
//	}
//
//	if err := schema.ValidateField(s, "id", "42"); err != nil {
//	    // *schema.ValidationError: field "id": expected int, got string
//	}
//
// Absent values (nil) always pass: a record slot that was never filled is
// valid for every type. Schemas can also be parsed from type strings, which is
// how definition files declare them:
//
//	s, err := schema.ParseTypeMap(map[string]string{"id": "int", "tags": "[string]"})
//
// The package has no dependencies beyond the standard library so that every
// other package in the module can import it.
package schema

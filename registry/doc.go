/*
Package registry associates record types with their DynamoDB key templates.

Index maps use {Field} macros that the ddb datastore expands from the record:

	registry.MustRegisterIndexMap[PersonRecord](map[string]string{
	    "PK": "PERSON#{ID}",
	    "SK": "PERSON#{ID}",
	})

The table is process-wide and safe for concurrent use. Populate it during
initialization, next to the assignment relationships for the same records.
*/
package registry

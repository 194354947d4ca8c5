/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design patterns
  - Macro-based key expansion (e.g., "PERSON#{Id}")
  - Conditional creates that never overwrite an existing record

Keys are derived from the index map registered for the record type:

	registry.MustRegisterIndexMap[PersonRecord](map[string]string{
	    "PK": "PERSON#{Id}",        // Becomes "PERSON#123"
	    "SK": "PERSON#{Id}",
	    "GSI1PK": "EMAIL#{Email}",  // Written as an extra attribute
	})

Macros name attributes as attributevalue marshals them, so dynamodbav tags
apply. GetOne and Delete substitute the string key for every macro.

Integration tests run with -tags integration and read AWS_ACCESS_KEY,
AWS_SECRET_KEY, AWS_REGION and AWS_DDB_TABLE from the environment or a .env file.
*/
package ddb

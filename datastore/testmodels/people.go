package testmodels

import "github.com/go-openapi/strfmt"

// Person is an incoming domain value, e.g. decoded from an API request.
type Person struct {
	ID    string
	Name  string
	Email string
}

type PersonRecord struct {

	// Unique identifier of the person.
	// Required: true
	ID *string `json:"Id" dynamodbav:"Id"`

	// Display name.
	// Required: true
	Name *string `json:"Name" dynamodbav:"Name"`

	// email
	Email string `json:"Email,omitempty" dynamodbav:"Email,omitempty"`

	// Number of times the record was written by an assigner.
	Revision int `json:"Revision" dynamodbav:"Revision"`

	// Timestamp when the record was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt" dynamodbav:"CreatedAt"`

	// Timestamp when the record was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt" dynamodbav:"UpdatedAt"`
}

// Order has no relationships registered in the fixtures.
type Order struct {
	ID    string
	Total float64
}

type OrderRecord struct {
	ID    string  `json:"Id" dynamodbav:"Id"`
	Total float64 `json:"Total" dynamodbav:"Total"`
}

// Package model declares the records and field tables of the Cognito
// Identity Provider API: shared shapes, string enums, and one input/output
// pair per operation.
//
// Every table is registered with the codec registry at init, so
// codec.For[model.UserType]() finds the same table as UserTypeTable.
package model

// Package protocol frames codec records as aws-json-1.1 requests and
// decodes responses, including service error documents, back into records
// or smithy API errors.
//
// An Operation pairs the input and output field tables of one remote call.
// A Catalog indexes operations by name so callers holding only raw JSON can
// transcode through the right tables.
package protocol

package model

import (
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Attributes builds an attribute list from name/value pairs, sorted by
// name.
func Attributes(kv map[string]string) []*AttributeType {
	out := make([]*AttributeType, 0, len(kv))
	for name, value := range kv {
		out = append(out, &AttributeType{Name: aws.String(name), Value: aws.String(value)})
	}
	slices.SortFunc(out, func(a, b *AttributeType) int {
		return strings.Compare(aws.ToString(a.Name), aws.ToString(b.Name))
	})
	return out
}

// AttributeValue returns the value of the named attribute.
func AttributeValue(attrs []*AttributeType, name string) (string, bool) {
	for _, a := range attrs {
		if a != nil && aws.ToString(a.Name) == name {
			return aws.ToString(a.Value), a.Value != nil
		}
	}
	return "", false
}

// Attribute returns the value of the user's named attribute.
func (u *UserType) Attribute(name string) (string, bool) {
	return AttributeValue(u.Attributes, name)
}

// Sub returns the user's immutable identifier, the "sub" attribute.
func (u *UserType) Sub() string {
	v, _ := u.Attribute("sub")
	return v
}

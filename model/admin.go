package model

import (
	"time"

	"github.com/ripkitten-co/idpcodec/codec"
	"github.com/ripkitten-co/idpcodec/protocol"
)

// Operations that act on a user pool with developer credentials.

type AdminCreateUserInput struct {
	UserPoolId             *string
	Username               *string
	UserAttributes         []*AttributeType
	ValidationData         []*AttributeType
	TemporaryPassword      *string
	ForceAliasCreation     *bool
	MessageAction          *MessageActionType
	DesiredDeliveryMediums []*DeliveryMediumType
	ClientMetadata         map[string]*string
}

type AdminCreateUserOutput struct {
	User *UserType
}

var (
	AdminCreateUserInputTable = codec.Register(codec.NewStruct("AdminCreateUserInput",
		codec.Member("UserPoolId", codec.String, func(r *AdminCreateUserInput) **string { return &r.UserPoolId }),
		codec.Member("Username", codec.String, func(r *AdminCreateUserInput) **string { return &r.Username }),
		codec.Member("UserAttributes", codec.ListOf(AttributeTypeTable), func(r *AdminCreateUserInput) *[]*AttributeType { return &r.UserAttributes }),
		codec.Member("ValidationData", codec.ListOf(AttributeTypeTable), func(r *AdminCreateUserInput) *[]*AttributeType { return &r.ValidationData }),
		codec.Member("TemporaryPassword", codec.String, func(r *AdminCreateUserInput) **string { return &r.TemporaryPassword }),
		codec.Member("ForceAliasCreation", codec.Bool, func(r *AdminCreateUserInput) **bool { return &r.ForceAliasCreation }),
		codec.Member("MessageAction", codec.Enum[MessageActionType](), func(r *AdminCreateUserInput) **MessageActionType { return &r.MessageAction }),
		codec.Member("DesiredDeliveryMediums", codec.List(codec.Enum[DeliveryMediumType]()), func(r *AdminCreateUserInput) *[]*DeliveryMediumType { return &r.DesiredDeliveryMediums }),
		codec.Member("ClientMetadata", codec.Map(codec.String), func(r *AdminCreateUserInput) *map[string]*string { return &r.ClientMetadata }),
	))
	AdminCreateUserOutputTable = codec.Register(codec.NewStruct("AdminCreateUserOutput",
		codec.Member("User", UserTypeTable, func(r *AdminCreateUserOutput) **UserType { return &r.User }),
	))

	AdminCreateUser = protocol.NewOperation("AdminCreateUser", AdminCreateUserInputTable, AdminCreateUserOutputTable)
)

// AdminUserInput identifies one user of a pool. AdminGetUser,
// AdminDeleteUser, AdminEnableUser and AdminDisableUser all take it.
type AdminUserInput struct {
	UserPoolId *string
	Username   *string
}

type (
	AdminGetUserInput     = AdminUserInput
	AdminDeleteUserInput  = AdminUserInput
	AdminEnableUserInput  = AdminUserInput
	AdminDisableUserInput = AdminUserInput
)

var AdminUserInputTable = codec.Register(codec.NewStruct("AdminUserInput",
	codec.Member("UserPoolId", codec.String, func(r *AdminUserInput) **string { return &r.UserPoolId }),
	codec.Member("Username", codec.String, func(r *AdminUserInput) **string { return &r.Username }),
))

type AdminGetUserOutput struct {
	Username             *string
	UserAttributes       []*AttributeType
	UserCreateDate       *time.Time
	UserLastModifiedDate *time.Time
	Enabled              *bool
	UserStatus           *UserStatusType
	MFAOptions           []*MFAOptionType
	PreferredMfaSetting  *string
	UserMFASettingList   []*string
}

type AdminDeleteUserOutput struct{}

type AdminEnableUserOutput struct{}

type AdminDisableUserOutput struct{}

var (
	AdminGetUserOutputTable = codec.Register(codec.NewStruct("AdminGetUserOutput",
		codec.Member("Username", codec.String, func(r *AdminGetUserOutput) **string { return &r.Username }),
		codec.Member("UserAttributes", codec.ListOf(AttributeTypeTable), func(r *AdminGetUserOutput) *[]*AttributeType { return &r.UserAttributes }),
		codec.Member("UserCreateDate", codec.Timestamp, func(r *AdminGetUserOutput) **time.Time { return &r.UserCreateDate }),
		codec.Member("UserLastModifiedDate", codec.Timestamp, func(r *AdminGetUserOutput) **time.Time { return &r.UserLastModifiedDate }),
		codec.Member("Enabled", codec.Bool, func(r *AdminGetUserOutput) **bool { return &r.Enabled }),
		codec.Member("UserStatus", codec.Enum[UserStatusType](), func(r *AdminGetUserOutput) **UserStatusType { return &r.UserStatus }),
		codec.Member("MFAOptions", codec.ListOf(MFAOptionTypeTable), func(r *AdminGetUserOutput) *[]*MFAOptionType { return &r.MFAOptions }),
		codec.Member("PreferredMfaSetting", codec.String, func(r *AdminGetUserOutput) **string { return &r.PreferredMfaSetting }),
		codec.Member("UserMFASettingList", codec.List(codec.String), func(r *AdminGetUserOutput) *[]*string { return &r.UserMFASettingList }),
	))
	AdminDeleteUserOutputTable  = codec.Register(codec.NewStruct[AdminDeleteUserOutput]("AdminDeleteUserOutput"))
	AdminEnableUserOutputTable  = codec.Register(codec.NewStruct[AdminEnableUserOutput]("AdminEnableUserOutput"))
	AdminDisableUserOutputTable = codec.Register(codec.NewStruct[AdminDisableUserOutput]("AdminDisableUserOutput"))

	AdminGetUser     = protocol.NewOperation("AdminGetUser", AdminUserInputTable, AdminGetUserOutputTable)
	AdminDeleteUser  = protocol.NewOperation("AdminDeleteUser", AdminUserInputTable, AdminDeleteUserOutputTable)
	AdminEnableUser  = protocol.NewOperation("AdminEnableUser", AdminUserInputTable, AdminEnableUserOutputTable)
	AdminDisableUser = protocol.NewOperation("AdminDisableUser", AdminUserInputTable, AdminDisableUserOutputTable)
)

type ListUsersInput struct {
	UserPoolId      *string
	AttributesToGet []*string
	Limit           *int32
	PaginationToken *string
	Filter          *string
}

type ListUsersOutput struct {
	Users           []*UserType
	PaginationToken *string
}

var (
	ListUsersInputTable = codec.Register(codec.NewStruct("ListUsersInput",
		codec.Member("UserPoolId", codec.String, func(r *ListUsersInput) **string { return &r.UserPoolId }),
		codec.Member("AttributesToGet", codec.List(codec.String), func(r *ListUsersInput) *[]*string { return &r.AttributesToGet }),
		codec.Member("Limit", codec.Int32, func(r *ListUsersInput) **int32 { return &r.Limit }),
		codec.Member("PaginationToken", codec.String, func(r *ListUsersInput) **string { return &r.PaginationToken }),
		codec.Member("Filter", codec.String, func(r *ListUsersInput) **string { return &r.Filter }),
	))
	ListUsersOutputTable = codec.Register(codec.NewStruct("ListUsersOutput",
		codec.Member("Users", codec.ListOf(UserTypeTable), func(r *ListUsersOutput) *[]*UserType { return &r.Users }),
		codec.Member("PaginationToken", codec.String, func(r *ListUsersOutput) **string { return &r.PaginationToken }),
	))

	ListUsers = protocol.NewOperation("ListUsers", ListUsersInputTable, ListUsersOutputTable)
)

type DescribeUserPoolClientInput struct {
	UserPoolId *string
	ClientId   *string
}

type DescribeUserPoolClientOutput struct {
	UserPoolClient *UserPoolClientType
}

var (
	DescribeUserPoolClientInputTable = codec.Register(codec.NewStruct("DescribeUserPoolClientInput",
		codec.Member("UserPoolId", codec.String, func(r *DescribeUserPoolClientInput) **string { return &r.UserPoolId }),
		codec.Member("ClientId", codec.String, func(r *DescribeUserPoolClientInput) **string { return &r.ClientId }),
	))
	DescribeUserPoolClientOutputTable = codec.Register(codec.NewStruct("DescribeUserPoolClientOutput",
		codec.Member("UserPoolClient", UserPoolClientTypeTable, func(r *DescribeUserPoolClientOutput) **UserPoolClientType { return &r.UserPoolClient }),
	))

	DescribeUserPoolClient = protocol.NewOperation("DescribeUserPoolClient", DescribeUserPoolClientInputTable, DescribeUserPoolClientOutputTable)
)

type ListUserPoolClientsInput struct {
	UserPoolId *string
	MaxResults *int32
	NextToken  *string
}

type ListUserPoolClientsOutput struct {
	UserPoolClients []*UserPoolClientDescription
	NextToken       *string
}

var (
	ListUserPoolClientsInputTable = codec.Register(codec.NewStruct("ListUserPoolClientsInput",
		codec.Member("UserPoolId", codec.String, func(r *ListUserPoolClientsInput) **string { return &r.UserPoolId }),
		codec.Member("MaxResults", codec.Int32, func(r *ListUserPoolClientsInput) **int32 { return &r.MaxResults }),
		codec.Member("NextToken", codec.String, func(r *ListUserPoolClientsInput) **string { return &r.NextToken }),
	))
	ListUserPoolClientsOutputTable = codec.Register(codec.NewStruct("ListUserPoolClientsOutput",
		codec.Member("UserPoolClients", codec.ListOf(UserPoolClientDescriptionTable), func(r *ListUserPoolClientsOutput) *[]*UserPoolClientDescription { return &r.UserPoolClients }),
		codec.Member("NextToken", codec.String, func(r *ListUserPoolClientsOutput) **string { return &r.NextToken }),
	))

	ListUserPoolClients = protocol.NewOperation("ListUserPoolClients", ListUserPoolClientsInputTable, ListUserPoolClientsOutputTable)
)

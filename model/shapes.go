package model

import (
	"time"

	"github.com/ripkitten-co/idpcodec/codec"
)

// AttributeType is a name/value user attribute such as "email".
type AttributeType struct {
	Name  *string
	Value *string
}

var AttributeTypeTable = codec.Register(codec.NewStruct("AttributeType",
	codec.Member("Name", codec.String, func(r *AttributeType) **string { return &r.Name }),
	codec.Member("Value", codec.String, func(r *AttributeType) **string { return &r.Value }),
))

// CodeDeliveryDetailsType says where a confirmation code was sent.
type CodeDeliveryDetailsType struct {
	Destination    *string
	DeliveryMedium *DeliveryMediumType
	AttributeName  *string
}

var CodeDeliveryDetailsTypeTable = codec.Register(codec.NewStruct("CodeDeliveryDetailsType",
	codec.Member("Destination", codec.String, func(r *CodeDeliveryDetailsType) **string { return &r.Destination }),
	codec.Member("DeliveryMedium", codec.Enum[DeliveryMediumType](), func(r *CodeDeliveryDetailsType) **DeliveryMediumType { return &r.DeliveryMedium }),
	codec.Member("AttributeName", codec.String, func(r *CodeDeliveryDetailsType) **string { return &r.AttributeName }),
))

type MFAOptionType struct {
	DeliveryMedium *DeliveryMediumType
	AttributeName  *string
}

var MFAOptionTypeTable = codec.Register(codec.NewStruct("MFAOptionType",
	codec.Member("DeliveryMedium", codec.Enum[DeliveryMediumType](), func(r *MFAOptionType) **DeliveryMediumType { return &r.DeliveryMedium }),
	codec.Member("AttributeName", codec.String, func(r *MFAOptionType) **string { return &r.AttributeName }),
))

// UserType is a user as listed by ListUsers and returned by AdminCreateUser.
type UserType struct {
	Username             *string
	Attributes           []*AttributeType
	UserCreateDate       *time.Time
	UserLastModifiedDate *time.Time
	Enabled              *bool
	UserStatus           *UserStatusType
	MFAOptions           []*MFAOptionType
}

var UserTypeTable = codec.Register(codec.NewStruct("UserType",
	codec.Member("Username", codec.String, func(r *UserType) **string { return &r.Username }),
	codec.Member("Attributes", codec.ListOf(AttributeTypeTable), func(r *UserType) *[]*AttributeType { return &r.Attributes }),
	codec.Member("UserCreateDate", codec.Timestamp, func(r *UserType) **time.Time { return &r.UserCreateDate }),
	codec.Member("UserLastModifiedDate", codec.Timestamp, func(r *UserType) **time.Time { return &r.UserLastModifiedDate }),
	codec.Member("Enabled", codec.Bool, func(r *UserType) **bool { return &r.Enabled }),
	codec.Member("UserStatus", codec.Enum[UserStatusType](), func(r *UserType) **UserStatusType { return &r.UserStatus }),
	codec.Member("MFAOptions", codec.ListOf(MFAOptionTypeTable), func(r *UserType) *[]*MFAOptionType { return &r.MFAOptions }),
))

type NewDeviceMetadataType struct {
	DeviceKey      *string
	DeviceGroupKey *string
}

var NewDeviceMetadataTypeTable = codec.Register(codec.NewStruct("NewDeviceMetadataType",
	codec.Member("DeviceKey", codec.String, func(r *NewDeviceMetadataType) **string { return &r.DeviceKey }),
	codec.Member("DeviceGroupKey", codec.String, func(r *NewDeviceMetadataType) **string { return &r.DeviceGroupKey }),
))

// AuthenticationResultType carries the tokens issued at the end of a
// successful authentication flow.
type AuthenticationResultType struct {
	AccessToken       *string
	ExpiresIn         *int32
	TokenType         *string
	RefreshToken      *string
	IdToken           *string
	NewDeviceMetadata *NewDeviceMetadataType
}

var AuthenticationResultTypeTable = codec.Register(codec.NewStruct("AuthenticationResultType",
	codec.Member("AccessToken", codec.String, func(r *AuthenticationResultType) **string { return &r.AccessToken }),
	codec.Member("ExpiresIn", codec.Int32, func(r *AuthenticationResultType) **int32 { return &r.ExpiresIn }),
	codec.Member("TokenType", codec.String, func(r *AuthenticationResultType) **string { return &r.TokenType }),
	codec.Member("RefreshToken", codec.String, func(r *AuthenticationResultType) **string { return &r.RefreshToken }),
	codec.Member("IdToken", codec.String, func(r *AuthenticationResultType) **string { return &r.IdToken }),
	codec.Member("NewDeviceMetadata", NewDeviceMetadataTypeTable, func(r *AuthenticationResultType) **NewDeviceMetadataType { return &r.NewDeviceMetadata }),
))

type AnalyticsMetadataType struct {
	AnalyticsEndpointId *string
}

var AnalyticsMetadataTypeTable = codec.Register(codec.NewStruct("AnalyticsMetadataType",
	codec.Member("AnalyticsEndpointId", codec.String, func(r *AnalyticsMetadataType) **string { return &r.AnalyticsEndpointId }),
))

type UserContextDataType struct {
	EncodedData *string
}

var UserContextDataTypeTable = codec.Register(codec.NewStruct("UserContextDataType",
	codec.Member("EncodedData", codec.String, func(r *UserContextDataType) **string { return &r.EncodedData }),
))

type TokenValidityUnitsType struct {
	AccessToken  *TimeUnitsType
	IdToken      *TimeUnitsType
	RefreshToken *TimeUnitsType
}

var TokenValidityUnitsTypeTable = codec.Register(codec.NewStruct("TokenValidityUnitsType",
	codec.Member("AccessToken", codec.Enum[TimeUnitsType](), func(r *TokenValidityUnitsType) **TimeUnitsType { return &r.AccessToken }),
	codec.Member("IdToken", codec.Enum[TimeUnitsType](), func(r *TokenValidityUnitsType) **TimeUnitsType { return &r.IdToken }),
	codec.Member("RefreshToken", codec.Enum[TimeUnitsType](), func(r *TokenValidityUnitsType) **TimeUnitsType { return &r.RefreshToken }),
))

// AnalyticsConfigurationType links a user pool client to a Pinpoint project.
type AnalyticsConfigurationType struct {
	ApplicationId  *string
	ApplicationArn *string
	RoleArn        *string
	ExternalId     *string
	UserDataShared *bool
}

var AnalyticsConfigurationTypeTable = codec.Register(codec.NewStruct("AnalyticsConfigurationType",
	codec.Member("ApplicationId", codec.String, func(r *AnalyticsConfigurationType) **string { return &r.ApplicationId }),
	codec.Member("ApplicationArn", codec.String, func(r *AnalyticsConfigurationType) **string { return &r.ApplicationArn }),
	codec.Member("RoleArn", codec.String, func(r *AnalyticsConfigurationType) **string { return &r.RoleArn }),
	codec.Member("ExternalId", codec.String, func(r *AnalyticsConfigurationType) **string { return &r.ExternalId }),
	codec.Member("UserDataShared", codec.Bool, func(r *AnalyticsConfigurationType) **bool { return &r.UserDataShared }),
))

// UserPoolClientType is the full configuration of an app client.
type UserPoolClientType struct {
	UserPoolId                      *string
	ClientName                      *string
	ClientId                        *string
	ClientSecret                    *string
	LastModifiedDate                *time.Time
	CreationDate                    *time.Time
	RefreshTokenValidity            *int32
	AccessTokenValidity             *int32
	IdTokenValidity                 *int32
	TokenValidityUnits              *TokenValidityUnitsType
	ReadAttributes                  []*string
	WriteAttributes                 []*string
	ExplicitAuthFlows               []*ExplicitAuthFlowsType
	SupportedIdentityProviders      []*string
	CallbackURLs                    []*string
	LogoutURLs                      []*string
	DefaultRedirectURI              *string
	AllowedOAuthFlows               []*OAuthFlowType
	AllowedOAuthScopes              []*string
	AllowedOAuthFlowsUserPoolClient *bool
	AnalyticsConfiguration          *AnalyticsConfigurationType
	PreventUserExistenceErrors      *PreventUserExistenceErrorTypes
	EnableTokenRevocation           *bool
}

var UserPoolClientTypeTable = codec.Register(codec.NewStruct("UserPoolClientType",
	codec.Member("UserPoolId", codec.String, func(r *UserPoolClientType) **string { return &r.UserPoolId }),
	codec.Member("ClientName", codec.String, func(r *UserPoolClientType) **string { return &r.ClientName }),
	codec.Member("ClientId", codec.String, func(r *UserPoolClientType) **string { return &r.ClientId }),
	codec.Member("ClientSecret", codec.String, func(r *UserPoolClientType) **string { return &r.ClientSecret }),
	codec.Member("LastModifiedDate", codec.Timestamp, func(r *UserPoolClientType) **time.Time { return &r.LastModifiedDate }),
	codec.Member("CreationDate", codec.Timestamp, func(r *UserPoolClientType) **time.Time { return &r.CreationDate }),
	codec.Member("RefreshTokenValidity", codec.Int32, func(r *UserPoolClientType) **int32 { return &r.RefreshTokenValidity }),
	codec.Member("AccessTokenValidity", codec.Int32, func(r *UserPoolClientType) **int32 { return &r.AccessTokenValidity }),
	codec.Member("IdTokenValidity", codec.Int32, func(r *UserPoolClientType) **int32 { return &r.IdTokenValidity }),
	codec.Member("TokenValidityUnits", TokenValidityUnitsTypeTable, func(r *UserPoolClientType) **TokenValidityUnitsType { return &r.TokenValidityUnits }),
	codec.Member("ReadAttributes", codec.List(codec.String), func(r *UserPoolClientType) *[]*string { return &r.ReadAttributes }),
	codec.Member("WriteAttributes", codec.List(codec.String), func(r *UserPoolClientType) *[]*string { return &r.WriteAttributes }),
	codec.Member("ExplicitAuthFlows", codec.List(codec.Enum[ExplicitAuthFlowsType]()), func(r *UserPoolClientType) *[]*ExplicitAuthFlowsType { return &r.ExplicitAuthFlows }),
	codec.Member("SupportedIdentityProviders", codec.List(codec.String), func(r *UserPoolClientType) *[]*string { return &r.SupportedIdentityProviders }),
	codec.Member("CallbackURLs", codec.List(codec.String), func(r *UserPoolClientType) *[]*string { return &r.CallbackURLs }),
	codec.Member("LogoutURLs", codec.List(codec.String), func(r *UserPoolClientType) *[]*string { return &r.LogoutURLs }),
	codec.Member("DefaultRedirectURI", codec.String, func(r *UserPoolClientType) **string { return &r.DefaultRedirectURI }),
	codec.Member("AllowedOAuthFlows", codec.List(codec.Enum[OAuthFlowType]()), func(r *UserPoolClientType) *[]*OAuthFlowType { return &r.AllowedOAuthFlows }),
	codec.Member("AllowedOAuthScopes", codec.List(codec.String), func(r *UserPoolClientType) *[]*string { return &r.AllowedOAuthScopes }),
	codec.Member("AllowedOAuthFlowsUserPoolClient", codec.Bool, func(r *UserPoolClientType) **bool { return &r.AllowedOAuthFlowsUserPoolClient }),
	codec.Member("AnalyticsConfiguration", AnalyticsConfigurationTypeTable, func(r *UserPoolClientType) **AnalyticsConfigurationType { return &r.AnalyticsConfiguration }),
	codec.Member("PreventUserExistenceErrors", codec.Enum[PreventUserExistenceErrorTypes](), func(r *UserPoolClientType) **PreventUserExistenceErrorTypes { return &r.PreventUserExistenceErrors }),
	codec.Member("EnableTokenRevocation", codec.Bool, func(r *UserPoolClientType) **bool { return &r.EnableTokenRevocation }),
))

// UserPoolClientDescription is the summary returned by ListUserPoolClients.
type UserPoolClientDescription struct {
	ClientId   *string
	UserPoolId *string
	ClientName *string
}

var UserPoolClientDescriptionTable = codec.Register(codec.NewStruct("UserPoolClientDescription",
	codec.Member("ClientId", codec.String, func(r *UserPoolClientDescription) **string { return &r.ClientId }),
	codec.Member("UserPoolId", codec.String, func(r *UserPoolClientDescription) **string { return &r.UserPoolId }),
	codec.Member("ClientName", codec.String, func(r *UserPoolClientDescription) **string { return &r.ClientName }),
))

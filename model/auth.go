package model

import (
	"github.com/ripkitten-co/idpcodec/codec"
	"github.com/ripkitten-co/idpcodec/protocol"
)

// Operations called by end users with a client id or an access token.

type SignUpInput struct {
	ClientId          *string
	SecretHash        *string
	Username          *string
	Password          *string
	UserAttributes    []*AttributeType
	ValidationData    []*AttributeType
	AnalyticsMetadata *AnalyticsMetadataType
	UserContextData   *UserContextDataType
	ClientMetadata    map[string]*string
}

type SignUpOutput struct {
	UserConfirmed       *bool
	CodeDeliveryDetails *CodeDeliveryDetailsType
	UserSub             *string
}

var (
	SignUpInputTable = codec.Register(codec.NewStruct("SignUpInput",
		codec.Member("ClientId", codec.String, func(r *SignUpInput) **string { return &r.ClientId }),
		codec.Member("SecretHash", codec.String, func(r *SignUpInput) **string { return &r.SecretHash }),
		codec.Member("Username", codec.String, func(r *SignUpInput) **string { return &r.Username }),
		codec.Member("Password", codec.String, func(r *SignUpInput) **string { return &r.Password }),
		codec.Member("UserAttributes", codec.ListOf(AttributeTypeTable), func(r *SignUpInput) *[]*AttributeType { return &r.UserAttributes }),
		codec.Member("ValidationData", codec.ListOf(AttributeTypeTable), func(r *SignUpInput) *[]*AttributeType { return &r.ValidationData }),
		codec.Member("AnalyticsMetadata", AnalyticsMetadataTypeTable, func(r *SignUpInput) **AnalyticsMetadataType { return &r.AnalyticsMetadata }),
		codec.Member("UserContextData", UserContextDataTypeTable, func(r *SignUpInput) **UserContextDataType { return &r.UserContextData }),
		codec.Member("ClientMetadata", codec.Map(codec.String), func(r *SignUpInput) *map[string]*string { return &r.ClientMetadata }),
	))
	SignUpOutputTable = codec.Register(codec.NewStruct("SignUpOutput",
		codec.Member("UserConfirmed", codec.Bool, func(r *SignUpOutput) **bool { return &r.UserConfirmed }),
		codec.Member("CodeDeliveryDetails", CodeDeliveryDetailsTypeTable, func(r *SignUpOutput) **CodeDeliveryDetailsType { return &r.CodeDeliveryDetails }),
		codec.Member("UserSub", codec.String, func(r *SignUpOutput) **string { return &r.UserSub }),
	))

	SignUp = protocol.NewOperation("SignUp", SignUpInputTable, SignUpOutputTable)
)

type ConfirmSignUpInput struct {
	ClientId           *string
	SecretHash         *string
	Username           *string
	ConfirmationCode   *string
	ForceAliasCreation *bool
	AnalyticsMetadata  *AnalyticsMetadataType
	UserContextData    *UserContextDataType
	ClientMetadata     map[string]*string
}

type ConfirmSignUpOutput struct{}

var (
	ConfirmSignUpInputTable = codec.Register(codec.NewStruct("ConfirmSignUpInput",
		codec.Member("ClientId", codec.String, func(r *ConfirmSignUpInput) **string { return &r.ClientId }),
		codec.Member("SecretHash", codec.String, func(r *ConfirmSignUpInput) **string { return &r.SecretHash }),
		codec.Member("Username", codec.String, func(r *ConfirmSignUpInput) **string { return &r.Username }),
		codec.Member("ConfirmationCode", codec.String, func(r *ConfirmSignUpInput) **string { return &r.ConfirmationCode }),
		codec.Member("ForceAliasCreation", codec.Bool, func(r *ConfirmSignUpInput) **bool { return &r.ForceAliasCreation }),
		codec.Member("AnalyticsMetadata", AnalyticsMetadataTypeTable, func(r *ConfirmSignUpInput) **AnalyticsMetadataType { return &r.AnalyticsMetadata }),
		codec.Member("UserContextData", UserContextDataTypeTable, func(r *ConfirmSignUpInput) **UserContextDataType { return &r.UserContextData }),
		codec.Member("ClientMetadata", codec.Map(codec.String), func(r *ConfirmSignUpInput) *map[string]*string { return &r.ClientMetadata }),
	))
	ConfirmSignUpOutputTable = codec.Register(codec.NewStruct[ConfirmSignUpOutput]("ConfirmSignUpOutput"))

	ConfirmSignUp = protocol.NewOperation("ConfirmSignUp", ConfirmSignUpInputTable, ConfirmSignUpOutputTable)
)

type ResendConfirmationCodeInput struct {
	ClientId          *string
	SecretHash        *string
	UserContextData   *UserContextDataType
	Username          *string
	AnalyticsMetadata *AnalyticsMetadataType
	ClientMetadata    map[string]*string
}

type ResendConfirmationCodeOutput struct {
	CodeDeliveryDetails *CodeDeliveryDetailsType
}

var (
	ResendConfirmationCodeInputTable = codec.Register(codec.NewStruct("ResendConfirmationCodeInput",
		codec.Member("ClientId", codec.String, func(r *ResendConfirmationCodeInput) **string { return &r.ClientId }),
		codec.Member("SecretHash", codec.String, func(r *ResendConfirmationCodeInput) **string { return &r.SecretHash }),
		codec.Member("UserContextData", UserContextDataTypeTable, func(r *ResendConfirmationCodeInput) **UserContextDataType { return &r.UserContextData }),
		codec.Member("Username", codec.String, func(r *ResendConfirmationCodeInput) **string { return &r.Username }),
		codec.Member("AnalyticsMetadata", AnalyticsMetadataTypeTable, func(r *ResendConfirmationCodeInput) **AnalyticsMetadataType { return &r.AnalyticsMetadata }),
		codec.Member("ClientMetadata", codec.Map(codec.String), func(r *ResendConfirmationCodeInput) *map[string]*string { return &r.ClientMetadata }),
	))
	ResendConfirmationCodeOutputTable = codec.Register(codec.NewStruct("ResendConfirmationCodeOutput",
		codec.Member("CodeDeliveryDetails", CodeDeliveryDetailsTypeTable, func(r *ResendConfirmationCodeOutput) **CodeDeliveryDetailsType { return &r.CodeDeliveryDetails }),
	))

	ResendConfirmationCode = protocol.NewOperation("ResendConfirmationCode", ResendConfirmationCodeInputTable, ResendConfirmationCodeOutputTable)
)

type InitiateAuthInput struct {
	AuthFlow          *AuthFlowType
	AuthParameters    map[string]*string
	ClientMetadata    map[string]*string
	ClientId          *string
	AnalyticsMetadata *AnalyticsMetadataType
	UserContextData   *UserContextDataType
}

// InitiateAuthOutput either names a challenge to answer with
// RespondToAuthChallenge or carries the issued tokens.
type InitiateAuthOutput struct {
	ChallengeName        *ChallengeNameType
	Session              *string
	ChallengeParameters  map[string]*string
	AuthenticationResult *AuthenticationResultType
}

var (
	InitiateAuthInputTable = codec.Register(codec.NewStruct("InitiateAuthInput",
		codec.Member("AuthFlow", codec.Enum[AuthFlowType](), func(r *InitiateAuthInput) **AuthFlowType { return &r.AuthFlow }),
		codec.Member("AuthParameters", codec.Map(codec.String), func(r *InitiateAuthInput) *map[string]*string { return &r.AuthParameters }),
		codec.Member("ClientMetadata", codec.Map(codec.String), func(r *InitiateAuthInput) *map[string]*string { return &r.ClientMetadata }),
		codec.Member("ClientId", codec.String, func(r *InitiateAuthInput) **string { return &r.ClientId }),
		codec.Member("AnalyticsMetadata", AnalyticsMetadataTypeTable, func(r *InitiateAuthInput) **AnalyticsMetadataType { return &r.AnalyticsMetadata }),
		codec.Member("UserContextData", UserContextDataTypeTable, func(r *InitiateAuthInput) **UserContextDataType { return &r.UserContextData }),
	))
	InitiateAuthOutputTable = codec.Register(codec.NewStruct("InitiateAuthOutput",
		codec.Member("ChallengeName", codec.Enum[ChallengeNameType](), func(r *InitiateAuthOutput) **ChallengeNameType { return &r.ChallengeName }),
		codec.Member("Session", codec.String, func(r *InitiateAuthOutput) **string { return &r.Session }),
		codec.Member("ChallengeParameters", codec.Map(codec.String), func(r *InitiateAuthOutput) *map[string]*string { return &r.ChallengeParameters }),
		codec.Member("AuthenticationResult", AuthenticationResultTypeTable, func(r *InitiateAuthOutput) **AuthenticationResultType { return &r.AuthenticationResult }),
	))

	InitiateAuth = protocol.NewOperation("InitiateAuth", InitiateAuthInputTable, InitiateAuthOutputTable)
)

type RespondToAuthChallengeInput struct {
	ClientId           *string
	ChallengeName      *ChallengeNameType
	Session            *string
	ChallengeResponses map[string]*string
	AnalyticsMetadata  *AnalyticsMetadataType
	UserContextData    *UserContextDataType
	ClientMetadata     map[string]*string
}

type RespondToAuthChallengeOutput struct {
	ChallengeName        *ChallengeNameType
	Session              *string
	ChallengeParameters  map[string]*string
	AuthenticationResult *AuthenticationResultType
}

var (
	RespondToAuthChallengeInputTable = codec.Register(codec.NewStruct("RespondToAuthChallengeInput",
		codec.Member("ClientId", codec.String, func(r *RespondToAuthChallengeInput) **string { return &r.ClientId }),
		codec.Member("ChallengeName", codec.Enum[ChallengeNameType](), func(r *RespondToAuthChallengeInput) **ChallengeNameType { return &r.ChallengeName }),
		codec.Member("Session", codec.String, func(r *RespondToAuthChallengeInput) **string { return &r.Session }),
		codec.Member("ChallengeResponses", codec.Map(codec.String), func(r *RespondToAuthChallengeInput) *map[string]*string { return &r.ChallengeResponses }),
		codec.Member("AnalyticsMetadata", AnalyticsMetadataTypeTable, func(r *RespondToAuthChallengeInput) **AnalyticsMetadataType { return &r.AnalyticsMetadata }),
		codec.Member("UserContextData", UserContextDataTypeTable, func(r *RespondToAuthChallengeInput) **UserContextDataType { return &r.UserContextData }),
		codec.Member("ClientMetadata", codec.Map(codec.String), func(r *RespondToAuthChallengeInput) *map[string]*string { return &r.ClientMetadata }),
	))
	RespondToAuthChallengeOutputTable = codec.Register(codec.NewStruct("RespondToAuthChallengeOutput",
		codec.Member("ChallengeName", codec.Enum[ChallengeNameType](), func(r *RespondToAuthChallengeOutput) **ChallengeNameType { return &r.ChallengeName }),
		codec.Member("Session", codec.String, func(r *RespondToAuthChallengeOutput) **string { return &r.Session }),
		codec.Member("ChallengeParameters", codec.Map(codec.String), func(r *RespondToAuthChallengeOutput) *map[string]*string { return &r.ChallengeParameters }),
		codec.Member("AuthenticationResult", AuthenticationResultTypeTable, func(r *RespondToAuthChallengeOutput) **AuthenticationResultType { return &r.AuthenticationResult }),
	))

	RespondToAuthChallenge = protocol.NewOperation("RespondToAuthChallenge", RespondToAuthChallengeInputTable, RespondToAuthChallengeOutputTable)
)

type ForgotPasswordInput struct {
	ClientId          *string
	SecretHash        *string
	UserContextData   *UserContextDataType
	Username          *string
	AnalyticsMetadata *AnalyticsMetadataType
	ClientMetadata    map[string]*string
}

type ForgotPasswordOutput struct {
	CodeDeliveryDetails *CodeDeliveryDetailsType
}

var (
	ForgotPasswordInputTable = codec.Register(codec.NewStruct("ForgotPasswordInput",
		codec.Member("ClientId", codec.String, func(r *ForgotPasswordInput) **string { return &r.ClientId }),
		codec.Member("SecretHash", codec.String, func(r *ForgotPasswordInput) **string { return &r.SecretHash }),
		codec.Member("UserContextData", UserContextDataTypeTable, func(r *ForgotPasswordInput) **UserContextDataType { return &r.UserContextData }),
		codec.Member("Username", codec.String, func(r *ForgotPasswordInput) **string { return &r.Username }),
		codec.Member("AnalyticsMetadata", AnalyticsMetadataTypeTable, func(r *ForgotPasswordInput) **AnalyticsMetadataType { return &r.AnalyticsMetadata }),
		codec.Member("ClientMetadata", codec.Map(codec.String), func(r *ForgotPasswordInput) *map[string]*string { return &r.ClientMetadata }),
	))
	ForgotPasswordOutputTable = codec.Register(codec.NewStruct("ForgotPasswordOutput",
		codec.Member("CodeDeliveryDetails", CodeDeliveryDetailsTypeTable, func(r *ForgotPasswordOutput) **CodeDeliveryDetailsType { return &r.CodeDeliveryDetails }),
	))

	ForgotPassword = protocol.NewOperation("ForgotPassword", ForgotPasswordInputTable, ForgotPasswordOutputTable)
)

type ConfirmForgotPasswordInput struct {
	ClientId          *string
	SecretHash        *string
	Username          *string
	ConfirmationCode  *string
	Password          *string
	AnalyticsMetadata *AnalyticsMetadataType
	UserContextData   *UserContextDataType
	ClientMetadata    map[string]*string
}

type ConfirmForgotPasswordOutput struct{}

var (
	ConfirmForgotPasswordInputTable = codec.Register(codec.NewStruct("ConfirmForgotPasswordInput",
		codec.Member("ClientId", codec.String, func(r *ConfirmForgotPasswordInput) **string { return &r.ClientId }),
		codec.Member("SecretHash", codec.String, func(r *ConfirmForgotPasswordInput) **string { return &r.SecretHash }),
		codec.Member("Username", codec.String, func(r *ConfirmForgotPasswordInput) **string { return &r.Username }),
		codec.Member("ConfirmationCode", codec.String, func(r *ConfirmForgotPasswordInput) **string { return &r.ConfirmationCode }),
		codec.Member("Password", codec.String, func(r *ConfirmForgotPasswordInput) **string { return &r.Password }),
		codec.Member("AnalyticsMetadata", AnalyticsMetadataTypeTable, func(r *ConfirmForgotPasswordInput) **AnalyticsMetadataType { return &r.AnalyticsMetadata }),
		codec.Member("UserContextData", UserContextDataTypeTable, func(r *ConfirmForgotPasswordInput) **UserContextDataType { return &r.UserContextData }),
		codec.Member("ClientMetadata", codec.Map(codec.String), func(r *ConfirmForgotPasswordInput) *map[string]*string { return &r.ClientMetadata }),
	))
	ConfirmForgotPasswordOutputTable = codec.Register(codec.NewStruct[ConfirmForgotPasswordOutput]("ConfirmForgotPasswordOutput"))

	ConfirmForgotPassword = protocol.NewOperation("ConfirmForgotPassword", ConfirmForgotPasswordInputTable, ConfirmForgotPasswordOutputTable)
)

type ChangePasswordInput struct {
	PreviousPassword *string
	ProposedPassword *string
	AccessToken      *string
}

type ChangePasswordOutput struct{}

var (
	ChangePasswordInputTable = codec.Register(codec.NewStruct("ChangePasswordInput",
		codec.Member("PreviousPassword", codec.String, func(r *ChangePasswordInput) **string { return &r.PreviousPassword }),
		codec.Member("ProposedPassword", codec.String, func(r *ChangePasswordInput) **string { return &r.ProposedPassword }),
		codec.Member("AccessToken", codec.String, func(r *ChangePasswordInput) **string { return &r.AccessToken }),
	))
	ChangePasswordOutputTable = codec.Register(codec.NewStruct[ChangePasswordOutput]("ChangePasswordOutput"))

	ChangePassword = protocol.NewOperation("ChangePassword", ChangePasswordInputTable, ChangePasswordOutputTable)
)

type GetUserInput struct {
	AccessToken *string
}

type GetUserOutput struct {
	Username            *string
	UserAttributes      []*AttributeType
	MFAOptions          []*MFAOptionType
	PreferredMfaSetting *string
	UserMFASettingList  []*string
}

var (
	GetUserInputTable = codec.Register(codec.NewStruct("GetUserInput",
		codec.Member("AccessToken", codec.String, func(r *GetUserInput) **string { return &r.AccessToken }),
	))
	GetUserOutputTable = codec.Register(codec.NewStruct("GetUserOutput",
		codec.Member("Username", codec.String, func(r *GetUserOutput) **string { return &r.Username }),
		codec.Member("UserAttributes", codec.ListOf(AttributeTypeTable), func(r *GetUserOutput) *[]*AttributeType { return &r.UserAttributes }),
		codec.Member("MFAOptions", codec.ListOf(MFAOptionTypeTable), func(r *GetUserOutput) *[]*MFAOptionType { return &r.MFAOptions }),
		codec.Member("PreferredMfaSetting", codec.String, func(r *GetUserOutput) **string { return &r.PreferredMfaSetting }),
		codec.Member("UserMFASettingList", codec.List(codec.String), func(r *GetUserOutput) *[]*string { return &r.UserMFASettingList }),
	))

	GetUser = protocol.NewOperation("GetUser", GetUserInputTable, GetUserOutputTable)
)

type UpdateUserAttributesInput struct {
	UserAttributes []*AttributeType
	AccessToken    *string
	ClientMetadata map[string]*string
}

type UpdateUserAttributesOutput struct {
	CodeDeliveryDetailsList []*CodeDeliveryDetailsType
}

var (
	UpdateUserAttributesInputTable = codec.Register(codec.NewStruct("UpdateUserAttributesInput",
		codec.Member("UserAttributes", codec.ListOf(AttributeTypeTable), func(r *UpdateUserAttributesInput) *[]*AttributeType { return &r.UserAttributes }),
		codec.Member("AccessToken", codec.String, func(r *UpdateUserAttributesInput) **string { return &r.AccessToken }),
		codec.Member("ClientMetadata", codec.Map(codec.String), func(r *UpdateUserAttributesInput) *map[string]*string { return &r.ClientMetadata }),
	))
	UpdateUserAttributesOutputTable = codec.Register(codec.NewStruct("UpdateUserAttributesOutput",
		codec.Member("CodeDeliveryDetailsList", codec.ListOf(CodeDeliveryDetailsTypeTable), func(r *UpdateUserAttributesOutput) *[]*CodeDeliveryDetailsType { return &r.CodeDeliveryDetailsList }),
	))

	UpdateUserAttributes = protocol.NewOperation("UpdateUserAttributes", UpdateUserAttributesInputTable, UpdateUserAttributesOutputTable)
)

type DeleteUserAttributesInput struct {
	UserAttributeNames []*string
	AccessToken        *string
}

type DeleteUserAttributesOutput struct{}

var (
	DeleteUserAttributesInputTable = codec.Register(codec.NewStruct("DeleteUserAttributesInput",
		codec.Member("UserAttributeNames", codec.List(codec.String), func(r *DeleteUserAttributesInput) *[]*string { return &r.UserAttributeNames }),
		codec.Member("AccessToken", codec.String, func(r *DeleteUserAttributesInput) **string { return &r.AccessToken }),
	))
	DeleteUserAttributesOutputTable = codec.Register(codec.NewStruct[DeleteUserAttributesOutput]("DeleteUserAttributesOutput"))

	DeleteUserAttributes = protocol.NewOperation("DeleteUserAttributes", DeleteUserAttributesInputTable, DeleteUserAttributesOutputTable)
)

type GlobalSignOutInput struct {
	AccessToken *string
}

type GlobalSignOutOutput struct{}

var (
	GlobalSignOutInputTable = codec.Register(codec.NewStruct("GlobalSignOutInput",
		codec.Member("AccessToken", codec.String, func(r *GlobalSignOutInput) **string { return &r.AccessToken }),
	))
	GlobalSignOutOutputTable = codec.Register(codec.NewStruct[GlobalSignOutOutput]("GlobalSignOutOutput"))

	GlobalSignOut = protocol.NewOperation("GlobalSignOut", GlobalSignOutInputTable, GlobalSignOutOutputTable)
)

package model

// AuthFlowType is the authentication flow requested by InitiateAuth.
type AuthFlowType string

const (
	AuthFlowUserSRPAuth           AuthFlowType = "USER_SRP_AUTH"
	AuthFlowRefreshTokenAuth      AuthFlowType = "REFRESH_TOKEN_AUTH"
	AuthFlowRefreshToken          AuthFlowType = "REFRESH_TOKEN"
	AuthFlowCustomAuth            AuthFlowType = "CUSTOM_AUTH"
	AuthFlowAdminNoSRPAuth        AuthFlowType = "ADMIN_NO_SRP_AUTH"
	AuthFlowUserPasswordAuth      AuthFlowType = "USER_PASSWORD_AUTH"
	AuthFlowAdminUserPasswordAuth AuthFlowType = "ADMIN_USER_PASSWORD_AUTH"
)

// Values returns the known values. Responses may carry others.
func (AuthFlowType) Values() []AuthFlowType {
	return []AuthFlowType{
		"USER_SRP_AUTH",
		"REFRESH_TOKEN_AUTH",
		"REFRESH_TOKEN",
		"CUSTOM_AUTH",
		"ADMIN_NO_SRP_AUTH",
		"USER_PASSWORD_AUTH",
		"ADMIN_USER_PASSWORD_AUTH",
	}
}

// ChallengeNameType names the next step of an authentication flow.
type ChallengeNameType string

const (
	ChallengeNameSMSMFA                 ChallengeNameType = "SMS_MFA"
	ChallengeNameSoftwareTokenMFA       ChallengeNameType = "SOFTWARE_TOKEN_MFA"
	ChallengeNameSelectMFAType          ChallengeNameType = "SELECT_MFA_TYPE"
	ChallengeNameMFASetup               ChallengeNameType = "MFA_SETUP"
	ChallengeNamePasswordVerifier       ChallengeNameType = "PASSWORD_VERIFIER"
	ChallengeNameCustomChallenge        ChallengeNameType = "CUSTOM_CHALLENGE"
	ChallengeNameDeviceSRPAuth          ChallengeNameType = "DEVICE_SRP_AUTH"
	ChallengeNameDevicePasswordVerifier ChallengeNameType = "DEVICE_PASSWORD_VERIFIER"
	ChallengeNameAdminNoSRPAuth         ChallengeNameType = "ADMIN_NO_SRP_AUTH"
	ChallengeNameNewPasswordRequired    ChallengeNameType = "NEW_PASSWORD_REQUIRED"
)

func (ChallengeNameType) Values() []ChallengeNameType {
	return []ChallengeNameType{
		"SMS_MFA",
		"SOFTWARE_TOKEN_MFA",
		"SELECT_MFA_TYPE",
		"MFA_SETUP",
		"PASSWORD_VERIFIER",
		"CUSTOM_CHALLENGE",
		"DEVICE_SRP_AUTH",
		"DEVICE_PASSWORD_VERIFIER",
		"ADMIN_NO_SRP_AUTH",
		"NEW_PASSWORD_REQUIRED",
	}
}

type DeliveryMediumType string

const (
	DeliveryMediumSMS   DeliveryMediumType = "SMS"
	DeliveryMediumEmail DeliveryMediumType = "EMAIL"
)

func (DeliveryMediumType) Values() []DeliveryMediumType {
	return []DeliveryMediumType{
		"SMS",
		"EMAIL",
	}
}

type MessageActionType string

const (
	MessageActionResend   MessageActionType = "RESEND"
	MessageActionSuppress MessageActionType = "SUPPRESS"
)

func (MessageActionType) Values() []MessageActionType {
	return []MessageActionType{
		"RESEND",
		"SUPPRESS",
	}
}

type UserStatusType string

const (
	UserStatusUnconfirmed         UserStatusType = "UNCONFIRMED"
	UserStatusConfirmed           UserStatusType = "CONFIRMED"
	UserStatusArchived            UserStatusType = "ARCHIVED"
	UserStatusCompromised         UserStatusType = "COMPROMISED"
	UserStatusUnknown             UserStatusType = "UNKNOWN"
	UserStatusResetRequired       UserStatusType = "RESET_REQUIRED"
	UserStatusForceChangePassword UserStatusType = "FORCE_CHANGE_PASSWORD"
)

func (UserStatusType) Values() []UserStatusType {
	return []UserStatusType{
		"UNCONFIRMED",
		"CONFIRMED",
		"ARCHIVED",
		"COMPROMISED",
		"UNKNOWN",
		"RESET_REQUIRED",
		"FORCE_CHANGE_PASSWORD",
	}
}

// TimeUnitsType qualifies token validity periods. The wire values are
// lower case.
type TimeUnitsType string

const (
	TimeUnitsSeconds TimeUnitsType = "seconds"
	TimeUnitsMinutes TimeUnitsType = "minutes"
	TimeUnitsHours   TimeUnitsType = "hours"
	TimeUnitsDays    TimeUnitsType = "days"
)

func (TimeUnitsType) Values() []TimeUnitsType {
	return []TimeUnitsType{
		"seconds",
		"minutes",
		"hours",
		"days",
	}
}

type ExplicitAuthFlowsType string

const (
	ExplicitAuthFlowsAdminNoSRPAuth             ExplicitAuthFlowsType = "ADMIN_NO_SRP_AUTH"
	ExplicitAuthFlowsCustomAuthFlowOnly         ExplicitAuthFlowsType = "CUSTOM_AUTH_FLOW_ONLY"
	ExplicitAuthFlowsUserPasswordAuth           ExplicitAuthFlowsType = "USER_PASSWORD_AUTH"
	ExplicitAuthFlowsAllowAdminUserPasswordAuth ExplicitAuthFlowsType = "ALLOW_ADMIN_USER_PASSWORD_AUTH"
	ExplicitAuthFlowsAllowCustomAuth            ExplicitAuthFlowsType = "ALLOW_CUSTOM_AUTH"
	ExplicitAuthFlowsAllowUserPasswordAuth      ExplicitAuthFlowsType = "ALLOW_USER_PASSWORD_AUTH"
	ExplicitAuthFlowsAllowUserSRPAuth           ExplicitAuthFlowsType = "ALLOW_USER_SRP_AUTH"
	ExplicitAuthFlowsAllowRefreshTokenAuth      ExplicitAuthFlowsType = "ALLOW_REFRESH_TOKEN_AUTH"
)

func (ExplicitAuthFlowsType) Values() []ExplicitAuthFlowsType {
	return []ExplicitAuthFlowsType{
		"ADMIN_NO_SRP_AUTH",
		"CUSTOM_AUTH_FLOW_ONLY",
		"USER_PASSWORD_AUTH",
		"ALLOW_ADMIN_USER_PASSWORD_AUTH",
		"ALLOW_CUSTOM_AUTH",
		"ALLOW_USER_PASSWORD_AUTH",
		"ALLOW_USER_SRP_AUTH",
		"ALLOW_REFRESH_TOKEN_AUTH",
	}
}

type OAuthFlowType string

const (
	OAuthFlowCode              OAuthFlowType = "code"
	OAuthFlowImplicit          OAuthFlowType = "implicit"
	OAuthFlowClientCredentials OAuthFlowType = "client_credentials"
)

func (OAuthFlowType) Values() []OAuthFlowType {
	return []OAuthFlowType{
		"code",
		"implicit",
		"client_credentials",
	}
}

type PreventUserExistenceErrorTypes string

const (
	PreventUserExistenceErrorLegacy  PreventUserExistenceErrorTypes = "LEGACY"
	PreventUserExistenceErrorEnabled PreventUserExistenceErrorTypes = "ENABLED"
)

func (PreventUserExistenceErrorTypes) Values() []PreventUserExistenceErrorTypes {
	return []PreventUserExistenceErrorTypes{
		"LEGACY",
		"ENABLED",
	}
}

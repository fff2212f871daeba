package model

import (
	"sync"

	"github.com/ripkitten-co/idpcodec/protocol"
)

// TargetPrefix is the service name in X-Amz-Target headers.
const TargetPrefix = "AWSCognitoIdentityProviderService"

// Errors lists the exception codes the service is known to return.
var Errors = []string{
	"AliasExistsException",
	"CodeDeliveryFailureException",
	"CodeMismatchException",
	"ConcurrentModificationException",
	"ExpiredCodeException",
	"InternalErrorException",
	"InvalidEmailRoleAccessPolicyException",
	"InvalidLambdaResponseException",
	"InvalidParameterException",
	"InvalidPasswordException",
	"InvalidSmsRoleAccessPolicyException",
	"InvalidSmsRoleTrustRelationshipException",
	"InvalidUserPoolConfigurationException",
	"LimitExceededException",
	"MFAMethodNotFoundException",
	"NotAuthorizedException",
	"PasswordResetRequiredException",
	"PreconditionNotMetException",
	"ResourceNotFoundException",
	"TooManyFailedAttemptsException",
	"TooManyRequestsException",
	"UnexpectedLambdaException",
	"UnsupportedUserStateException",
	"UserLambdaValidationException",
	"UserNotConfirmedException",
	"UserNotFoundException",
	"UsernameExistsException",
}

var operations = sync.OnceValue(func() *protocol.Catalog {
	return protocol.NewCatalog(
		SignUp,
		ConfirmSignUp,
		ResendConfirmationCode,
		InitiateAuth,
		RespondToAuthChallenge,
		ForgotPassword,
		ConfirmForgotPassword,
		ChangePassword,
		GetUser,
		UpdateUserAttributes,
		DeleteUserAttributes,
		GlobalSignOut,
		AdminCreateUser,
		AdminGetUser,
		AdminDeleteUser,
		AdminEnableUser,
		AdminDisableUser,
		ListUsers,
		DescribeUserPoolClient,
		ListUserPoolClients,
	)
})

// Operations returns the catalog of every operation in this package.
func Operations() *protocol.Catalog { return operations() }

// NewProtocol returns a protocol configured with TargetPrefix.
func NewProtocol(opts ...protocol.Option) *protocol.Protocol {
	return protocol.New(append([]protocol.Option{protocol.WithTargetPrefix(TargetPrefix)}, opts...)...)
}

package model_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
	"github.com/google/go-cmp/cmp"
	"github.com/ripkitten-co/idpcodec/codec"
	"github.com/ripkitten-co/idpcodec/model"
	"github.com/ripkitten-co/idpcodec/protocol"
)

func enum[E ~string](v E) *E { return &v }

func TestOperations_Catalog(t *testing.T) {
	ops := model.Operations()
	if ops.Len() != 20 {
		t.Fatalf("catalog has %d operations, want 20", ops.Len())
	}
	for _, name := range ops.Names() {
		d, _ := ops.Lookup(name)
		if got, want := d.Input().Name(), name+"Input"; got != want && got != "AdminUserInput" {
			t.Errorf("%s input table = %q", name, got)
		}
		if got, want := d.Output().Name(), name+"Output"; got != want {
			t.Errorf("%s output table = %q, want %q", name, got, want)
		}
	}
	if model.Operations() != ops {
		t.Error("catalog rebuilt on second call")
	}
}

func TestSignUp_Request(t *testing.T) {
	p := model.NewProtocol()
	req, err := model.SignUp.MarshalRequest(context.Background(), p, &model.SignUpInput{
		ClientId: aws.String("client-1"),
		Username: aws.String("alice"),
		Password: aws.String("hunter22!"),
		UserAttributes: model.Attributes(map[string]string{
			"phone_number": "+15555550100",
			"email":        "alice@test.com",
		}),
		ClientMetadata: aws.StringMap(map[string]string{"source": "web"}),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"ClientId":"client-1","Username":"alice","Password":"hunter22!",` +
		`"UserAttributes":[{"Name":"email","Value":"alice@test.com"},{"Name":"phone_number","Value":"+15555550100"}],` +
		`"ClientMetadata":{"source":"web"}}`
	if string(req.Body) != want {
		t.Errorf("body\n got %s\nwant %s", req.Body, want)
	}
	if got := req.Header.Get(protocol.HeaderTarget); got != "AWSCognitoIdentityProviderService.SignUp" {
		t.Errorf("target = %q", got)
	}
}

func TestInitiateAuth_ChallengeResponse(t *testing.T) {
	body := `{
		"ChallengeName": "SMS_MFA",
		"Session": "sess-abc",
		"ChallengeParameters": {"CODE_DELIVERY_DESTINATION": "+*******0100", "USER_ID_FOR_SRP": "alice"},
		"AuthenticationResult": null
	}`
	out, err := model.InitiateAuth.UnmarshalResponse(context.Background(), model.NewProtocol(), &protocol.Response{
		StatusCode: http.StatusOK,
		Body:       []byte(body),
	})
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := &model.InitiateAuthOutput{
		ChallengeName: enum(model.ChallengeNameSMSMFA),
		Session:       aws.String("sess-abc"),
		ChallengeParameters: aws.StringMap(map[string]string{
			"CODE_DELIVERY_DESTINATION": "+*******0100",
			"USER_ID_FOR_SRP":           "alice",
		}),
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRespondToAuthChallenge_Tokens(t *testing.T) {
	body := `{"AuthenticationResult":{"AccessToken":"at","ExpiresIn":3600,"TokenType":"Bearer",` +
		`"RefreshToken":"rt","IdToken":"it","NewDeviceMetadata":{"DeviceKey":"dk","DeviceGroupKey":"dgk"}},` +
		`"ChallengeParameters":{}}`
	out, err := model.RespondToAuthChallenge.UnmarshalResponse(context.Background(), model.NewProtocol(), &protocol.Response{
		StatusCode: http.StatusOK,
		Body:       []byte(body),
	})
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := &model.RespondToAuthChallengeOutput{
		ChallengeParameters: map[string]*string{},
		AuthenticationResult: &model.AuthenticationResultType{
			AccessToken:  aws.String("at"),
			ExpiresIn:    aws.Int32(3600),
			TokenType:    aws.String("Bearer"),
			RefreshToken: aws.String("rt"),
			IdToken:      aws.String("it"),
			NewDeviceMetadata: &model.NewDeviceMetadataType{
				DeviceKey:      aws.String("dk"),
				DeviceGroupKey: aws.String("dgk"),
			},
		},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestListUsers_RoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 250_000_000, time.UTC)
	in := &model.ListUsersOutput{
		Users: []*model.UserType{
			{
				Username:       aws.String("alice"),
				Attributes:     model.Attributes(map[string]string{"sub": "4a1b", "email": "alice@test.com"}),
				UserCreateDate: aws.Time(created),
				Enabled:        aws.Bool(true),
				UserStatus:     enum(model.UserStatusConfirmed),
				MFAOptions: []*model.MFAOptionType{
					{DeliveryMedium: enum(model.DeliveryMediumSMS), AttributeName: aws.String("phone_number")},
				},
			},
			{Username: aws.String("bob"), UserStatus: enum(model.UserStatusType("SOMETHING_NEW"))},
		},
		PaginationToken: aws.String("next"),
	}
	for _, f := range []codec.TimestampFormat{codec.EpochSeconds, codec.ISO8601} {
		data, err := codec.Marshal(model.ListUsersOutputTable, in, codec.WithTimestampFormat(f))
		if err != nil {
			t.Fatalf("%v: marshal: %v", f, err)
		}
		got, err := codec.Unmarshal(model.ListUsersOutputTable, data)
		if err != nil {
			t.Fatalf("%v: unmarshal: %v", f, err)
		}
		if diff := cmp.Diff(in, got); diff != "" {
			t.Errorf("%v: round trip (-want +got):\n%s", f, diff)
		}
	}
	if sub := in.Users[0].Sub(); sub != "4a1b" {
		t.Errorf("Sub = %q", sub)
	}
}

func TestDescribeUserPoolClient_Decode(t *testing.T) {
	body := `{"UserPoolClient":{
		"UserPoolId":"us-east-1_abc","ClientName":"web","ClientId":"c1",
		"LastModifiedDate":1.7092854E9,"CreationDate":1709285400,
		"RefreshTokenValidity":30,"TokenValidityUnits":{"RefreshToken":"days","AccessToken":"hours"},
		"ExplicitAuthFlows":["ALLOW_USER_SRP_AUTH","ALLOW_REFRESH_TOKEN_AUTH"],
		"AllowedOAuthFlows":["code"],"AllowedOAuthFlowsUserPoolClient":true,
		"AnalyticsConfiguration":{"ApplicationId":"app","UserDataShared":false},
		"PreventUserExistenceErrors":"ENABLED","EnableTokenRevocation":true,
		"AuthSessionValidity":3}}`
	out, err := model.DescribeUserPoolClient.UnmarshalResponse(context.Background(), model.NewProtocol(), &protocol.Response{
		StatusCode: http.StatusOK,
		Body:       []byte(body),
	})
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	stamp := aws.Time(time.Unix(1709285400, 0).UTC())
	want := &model.DescribeUserPoolClientOutput{UserPoolClient: &model.UserPoolClientType{
		UserPoolId:           aws.String("us-east-1_abc"),
		ClientName:           aws.String("web"),
		ClientId:             aws.String("c1"),
		LastModifiedDate:     stamp,
		CreationDate:         stamp,
		RefreshTokenValidity: aws.Int32(30),
		TokenValidityUnits: &model.TokenValidityUnitsType{
			AccessToken:  enum(model.TimeUnitsHours),
			RefreshToken: enum(model.TimeUnitsDays),
		},
		ExplicitAuthFlows: []*model.ExplicitAuthFlowsType{
			enum(model.ExplicitAuthFlowsAllowUserSRPAuth),
			enum(model.ExplicitAuthFlowsAllowRefreshTokenAuth),
		},
		AllowedOAuthFlows:               []*model.OAuthFlowType{enum(model.OAuthFlowCode)},
		AllowedOAuthFlowsUserPoolClient: aws.Bool(true),
		AnalyticsConfiguration: &model.AnalyticsConfigurationType{
			ApplicationId:  aws.String("app"),
			UserDataShared: aws.Bool(false),
		},
		PreventUserExistenceErrors: enum(model.PreventUserExistenceErrorEnabled),
		EnableTokenRevocation:      aws.Bool(true),
	}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyOutputs(t *testing.T) {
	for _, name := range []string{"ConfirmSignUp", "GlobalSignOut", "AdminDeleteUser", "AdminEnableUser", "AdminDisableUser"} {
		d, ok := model.Operations().Lookup(name)
		if !ok {
			t.Fatalf("%s missing", name)
		}
		out, err := d.TranscodeOutput(context.Background(), model.NewProtocol(), &protocol.Response{StatusCode: 200, Body: []byte(`{}`)})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if string(out) != `{}` {
			t.Errorf("%s: got %s", name, out)
		}
	}
}

func TestServiceError_KnownCode(t *testing.T) {
	_, err := model.ForgotPassword.UnmarshalResponse(context.Background(), model.NewProtocol(), &protocol.Response{
		StatusCode: http.StatusBadRequest,
		Body:       []byte(`{"__type":"UserNotFoundException","message":"User does not exist."}`),
	})
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want smithy.APIError", err)
	}
	known := false
	for _, code := range model.Errors {
		known = known || code == apiErr.ErrorCode()
	}
	if !known {
		t.Errorf("code %q not in model.Errors", apiErr.ErrorCode())
	}
}

func TestRegistry_FindsModelTables(t *testing.T) {
	s, ok := codec.For[model.UserType]()
	if !ok || s != model.UserTypeTable {
		t.Fatal("UserType table not registered")
	}
	if _, ok := codec.For[model.AdminGetUserInput](); !ok {
		t.Error("AdminUserInput alias not resolved")
	}
}

func TestEnumValues(t *testing.T) {
	if got := len(model.ChallengeNameType("").Values()); got != 10 {
		t.Errorf("ChallengeNameType has %d values", got)
	}
	if diff := cmp.Diff([]model.DeliveryMediumType{"SMS", "EMAIL"}, model.DeliveryMediumType("").Values()); diff != "" {
		t.Errorf("DeliveryMediumType (-want +got):\n%s", diff)
	}
}

func TestAttributeValue(t *testing.T) {
	attrs := []*model.AttributeType{nil, {Name: aws.String("email_verified")}, {Name: aws.String("email"), Value: aws.String("a@b.c")}}
	if v, ok := model.AttributeValue(attrs, "email"); !ok || v != "a@b.c" {
		t.Errorf("email = %q, %v", v, ok)
	}
	if _, ok := model.AttributeValue(attrs, "email_verified"); ok {
		t.Error("attribute without value reported present")
	}
	if _, ok := model.AttributeValue(attrs, "missing"); ok {
		t.Error("missing attribute reported present")
	}
}

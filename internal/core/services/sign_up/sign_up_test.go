package signup

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL        = "alice@mail.com"
	NAME         = "alice"
	RAW_PASSWORD = "alice1234"
	ACCESS_TOKEN = "test-access-token"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	UserRepository    *user.FakeUserRepository
	PasswordHasher    *user.FakePasswordHasher
	AccessTokenIssuer *user.FakeAccessTokenIssuer
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.AccessTokenIssuer = user.NewFakeAccessTokenIssuer(ACCESS_TOKEN)
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
		suite.AccessTokenIssuer,
		func() time.Time { return NOW },
	)
}

func TestSignUpService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(
		context.Background(),
		Input{Email: EMAIL, Name: NAME, Password: RAW_PASSWORD},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), result.User.ID)
	assert.Equal(c.Email(EMAIL), result.User.Email)
	assert.Equal(user.Name(NAME), result.User.Name)
	assert.Equal(NOW, result.User.CreatedAt)
	assert.NotEqual(user.PasswordHash(RAW_PASSWORD), result.User.PasswordHash)
	assert.Equal(user.AccessToken(ACCESS_TOKEN), result.Token)
}

func (suite *testSuite) TestInvalidInput() {
	cases := []struct {
		id          string
		input       Input
		expectedErr error
	}{
		{"email", Input{Email: "not-an-email", Name: NAME, Password: RAW_PASSWORD}, c.ErrInvalidEmail},
		{"name", Input{Email: EMAIL, Name: "a", Password: RAW_PASSWORD}, user.ErrInvalidName},
		{"password", Input{Email: EMAIL, Name: NAME, Password: "123"}, user.ErrPasswordOutOfRange},
	}
	for _, testcase := range cases {
		_, err := suite.Service.Run(context.Background(), testcase.input)

		suite.Require().ErrorIs(err, testcase.expectedErr, testcase.id)
		suite.Require().Equal(0, suite.UserRepository.CreateCallCount, testcase.id)
	}
}

func (suite *testSuite) TestAlreadyExists() {
	_, err := suite.Service.Run(
		context.Background(),
		Input{Email: EMAIL, Name: NAME, Password: RAW_PASSWORD},
	)
	suite.Require().Nil(err)

	_, err = suite.Service.Run(
		context.Background(),
		Input{Email: EMAIL, Name: "bob42", Password: RAW_PASSWORD},
	)
	suite.Require().ErrorIs(err, user.ErrUserAlreadyExists)

	_, err = suite.Service.Run(
		context.Background(),
		Input{Email: "bob@mail.com", Name: NAME, Password: RAW_PASSWORD},
	)
	suite.Require().ErrorIs(err, user.ErrUserAlreadyExists)
}

package signin

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
	EMAIL        = c.Email("alice@mail.com")
	NAME         = "alice"
	RAW_PASSWORD = user.RawPassword("alice1234")
	ACCESS_TOKEN = "test-access-token"
)

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
	)
}

func TestSignInService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser() {
	hash, err := suite.PasswordHasher.HashPassword(RAW_PASSWORD)
	suite.Require().Nil(err)
	_, err = suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        EMAIL,
		Name:         user.Name(NAME),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	suite.Require().Nil(err)
}

func (suite *testSuite) TestSuccess() {
	suite.createUser()

	result, err := suite.Service.Run(
		context.Background(),
		Input{Name: NAME, Password: string(RAW_PASSWORD)},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(user.AccessToken(ACCESS_TOKEN), result.Token)
}

func (suite *testSuite) TestUnknownUser() {
	_, err := suite.Service.Run(
		context.Background(),
		Input{Name: NAME, Password: string(RAW_PASSWORD)},
	)

	suite.Require().ErrorIs(err, user.ErrInvalidCredentials)
}

func (suite *testSuite) TestWrongPassword() {
	suite.createUser()

	_, err := suite.Service.Run(
		context.Background(),
		Input{Name: NAME, Password: "wrong-password"},
	)

	suite.Require().ErrorIs(err, user.ErrInvalidCredentials)
	suite.Require().Empty(suite.AccessTokenIssuer.IssuedFor)
}

func (suite *testSuite) TestMalformedCredentials() {
	suite.createUser()

	for _, input := range []Input{
		{Name: "", Password: string(RAW_PASSWORD)},
		{Name: NAME, Password: ""},
		{Name: "no spaces allowed", Password: string(RAW_PASSWORD)},
	} {
		_, err := suite.Service.Run(context.Background(), input)
		suite.Require().ErrorIs(err, user.ErrInvalidCredentials)
	}
}

package requestpasswordreset

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/resettoken"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL       = "alice@mail.com"
	TOKEN_VALUE = "test-token-value"
)

var EXPIRES_AT = resettoken.Expiration(time.Now().UTC().Add(30 * time.Minute))

type testSuite struct {
	suite.Suite
	Logger          *logging.FakeLogger
	UserRepository  *user.FakeUserRepository
	TokenRepository *resettoken.FakeRepository
	TokenIssuer     *resettoken.FakeIssuer
	TokenSender     *resettoken.FakeSender
	Service         services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.TokenRepository = resettoken.NewFakeRepository()
	suite.TokenIssuer = resettoken.NewFakeIssuer(TOKEN_VALUE, EXPIRES_AT)
	suite.TokenSender = resettoken.NewFakeSender()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.TokenRepository,
		suite.TokenIssuer,
		suite.TokenSender,
	)
}

func TestRequestPasswordResetService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser() user.User {
	u, err := suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		Name:         user.Name("alice"),
		PasswordHash: user.PasswordHash("hash"),
		CreatedAt:    time.Now().UTC(),
	})
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestSuccess() {
	suite.createUser()

	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(resettoken.Value(TOKEN_VALUE), result.Token.Value)
	assert.Equal(c.Email(EMAIL), result.Token.Email)
	assert.Equal(EXPIRES_AT, result.Token.ExpiresAt)
	assert.Equal(1, suite.TokenRepository.SaveCallCount)
	assert.Equal(c.Email(EMAIL), suite.TokenRepository.Tokens[resettoken.Value(TOKEN_VALUE)])
	assert.Equal(1, suite.TokenSender.SentCount())
	assert.Equal(result.Token, suite.TokenSender.Sent[0])
}

func (suite *testSuite) TestInvalidEmailDoesNotTouchRepositories() {
	for _, email := range []string{"", "not-an-email", "ali..ce@mail.com", "@mail.com"} {
		_, err := suite.Service.Run(context.Background(), Input{Email: email})

		assert := suite.Require()
		assert.ErrorIs(err, c.ErrInvalidEmail, email)
		assert.Equal(0, suite.UserRepository.ExistsCallCount)
		assert.Equal(0, suite.TokenRepository.SaveCallCount)
		assert.Equal(0, suite.TokenSender.SentCount())
	}
}

func (suite *testSuite) TestUnknownAccount() {
	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
	assert.Equal(0, suite.TokenRepository.SaveCallCount)
	assert.Equal(0, suite.TokenSender.SentCount())
}

func (suite *testSuite) TestSecondRequestConflicts() {
	suite.createUser()

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.ErrorIs(err, resettoken.ErrAlreadyRequested)
	assert.Equal(1, suite.TokenRepository.SaveCallCount)
	assert.Equal(1, suite.TokenSender.SentCount())
}

func (suite *testSuite) TestConcurrentSaveLosesRace() {
	suite.createUser()
	// A concurrent request won between the IsRequested check and Save: the
	// sentinel exists, but the check still reports no outstanding token.
	suite.TokenRepository.Requested[c.Email(EMAIL)] = true
	suite.TokenRepository.ForceNotRequested = true

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	suite.Require().ErrorIs(err, resettoken.ErrAlreadyRequested)
	suite.Require().Equal(1, suite.TokenRepository.SaveCallCount)
	suite.Require().Equal(0, suite.TokenSender.SentCount())
}

func (suite *testSuite) TestSenderErrorPropagatesButTokenIsPersisted() {
	suite.createUser()
	suite.TokenSender.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(c.Email(EMAIL), suite.TokenRepository.Tokens[resettoken.Value(TOKEN_VALUE)])
	requested, repoErr := suite.TokenRepository.IsRequested(context.Background(), c.Email(EMAIL))
	assert.Nil(repoErr)
	assert.True(requested)
}

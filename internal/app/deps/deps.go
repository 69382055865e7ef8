package deps

import (
	"accounts/internal/config"
	dl "accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/resettoken"
	"accounts/internal/core/domain/user"
	dbuser "accounts/internal/db/user"
	accesstoken "accounts/internal/implementations/access_token"
	"accounts/internal/implementations/email"
	"accounts/internal/implementations/logging"
	passwordhasher "accounts/internal/implementations/password_hasher"
	resettokenissuer "accounts/internal/implementations/reset_token_issuer"
	resettokenrepository "accounts/internal/implementations/reset_token_repository"
	"accounts/internal/rabbitmq"
	resetemail "accounts/internal/rabbitmq/publishers/reset_email"
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UserRepository       user.UserRepository
	ResetTokenRepository resettoken.Repository

	PasswordHasher    user.PasswordHasher
	AccessTokenIssuer user.AccessTokenIssuer
	ResetTokenIssuer  resettoken.Issuer
	ResetLinkSender   resettoken.Sender

	Mailer *email.SESSender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.ResetTokenRepository = resettokenrepository.NewRedis(deps.Redis, deps.Logger)

	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.AccessTokenIssuer = accesstoken.NewJWT(
		deps.Config.Secret,
		deps.Config.AccessTokenIssuer,
		deps.Config.AccessTokenValidDuration,
		deps.Now,
	)
	deps.initResetTokenIssuer()

	closeResetLinkSender := deps.initRabbitmqResetLinkSender()

	deps.Mailer = email.NewSESSender(deps.AwsConfig, deps.Config.AwsEmailSender)

	return deps, func() {
		closeFuncs := []func(){
			closeResetLinkSender,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initResetTokenIssuer() {
	issuer, err := resettokenissuer.NewUUID(deps.Config.PasswordResetTTL, deps.Now)
	if err != nil {
		deps.Logger.Error(
			context.Background(),
			"Invalid password reset TTL.",
			dl.Entry("ttl", deps.Config.PasswordResetTTL),
			dl.Entry("err", err),
		)
		panic(err)
	}
	deps.ResetTokenIssuer = issuer
}

func (deps *Deps) initRabbitmqResetLinkSender() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqResetEmailQueue
	if _, err := rabbitmqChannel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	deps.ResetLinkSender = resetemail.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.Config.PasswordResetBaseURL,
		deps.Config.PasswordResetEmailSubject,
		deps.Config.PasswordResetEmailTemplate,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down reset email publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Reset email publisher shut down.")
	}
}

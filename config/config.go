package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Prefix   string `envconfig:"PREFIX"`
	Mode     Mode   `envconfig:"MODE"`
	Database Database
	JWT      JWT
	Log      Log `mapstructure:"log"`
	Storage  Storage
	Features Features
	Admin    Admin
	Sentry   Sentry
	OTel     OTel `mapstructure:"otel"`
}

type Database struct {
	Driver string `envconfig:"DB_DRIVER" mapstructure:"driver"` // mysql 或 sqlite
	Mysql  Mysql
	SQLite SQLite `mapstructure:"sqlite"`
}

type Mysql struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

type SQLite struct {
	Path string `envconfig:"SQLITE_PATH" mapstructure:"path"` // 数据库文件路径
}

type JWT struct {
	AccessSecret string `envconfig:"ACCESS_SECRET"`
	AccessExpire int64  `envconfig:"ACCESS_EXPIRE"` // 令牌有效期（秒），默认 30 分钟
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Storage struct {
	StaticDir string `envconfig:"STATIC_DIR" mapstructure:"static_dir"` // 前端静态资源目录
}

type Features struct {
	RequireApproval bool `envconfig:"REQUIRE_APPROVAL" mapstructure:"require_approval"` // 报名是否需要管理员审批
}

// Admin 初始管理员账号，邮箱和密码均非空时在首次启动种入
type Admin struct {
	Email    string `envconfig:"ADMIN_EMAIL" mapstructure:"email"`
	Password string `envconfig:"ADMIN_PASSWORD" mapstructure:"password"`
	NickName string `envconfig:"ADMIN_NICK_NAME" mapstructure:"nick_name"`
}

type Sentry struct {
	Dsn         string  `envconfig:"SENTRY_DSN" mapstructure:"dsn"`
	Environment string  `envconfig:"SENTRY_ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64 `envconfig:"SENTRY_SAMPLE_RATE" mapstructure:"sample_rate"` // 性能追踪采样率
}

type OTel struct {
	Enable      bool   `envconfig:"OTEL_ENABLE" mapstructure:"enable"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" mapstructure:"service_name"`
	AgentHost   string `envconfig:"OTEL_AGENT_HOST" mapstructure:"agent_host"`
	AgentPort   string `envconfig:"OTEL_AGENT_PORT" mapstructure:"agent_port"`
}

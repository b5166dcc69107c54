package database

import (
	"fmt"
	"sync/atomic"

	"school-activities-system/config"
	"school-activities-system/internal/model"
	"school-activities-system/tools"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// autoMigrateModels 需要自动迁移的模型列表
var autoMigrateModels = []any{
	&model.User{},
	&model.Activity{},
	&model.Participant{},
	&model.MembershipRequest{},
	&model.Event{},
	&model.EventAttendee{},
	// 在这里添加其他模型
}

func Init() {
	cfg := config.Get()

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.Database.Mysql.Username,
			cfg.Database.Mysql.Password,
			cfg.Database.Mysql.Host,
			cfg.Database.Mysql.Port,
			cfg.Database.Mysql.DBName,
		)
		dialector = mysql.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.Database.SQLite.Path)
	}

	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true}, // 还是单数表名好
		TranslateError: true,                                       // 唯一约束冲突统一成 gorm.ErrDuplicatedKey
	}

	switch cfg.Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(dialector, gormConfig)
	tools.PanicOnErr(err)
	DB = db

	tools.PanicOnErr(DB.AutoMigrate(autoMigrateModels...))

	tools.PanicOnErr(Seed())
}

var testDBCount atomic.Int64

// InitTest 每次创建独立的内存库，互不串数据
func InitTest() {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCount.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		TranslateError: true,
		Logger:         logger.Discard,
	})
	tools.PanicOnErr(err)

	// 内存库随最后一个连接释放，限制为单连接防止表凭空消失
	sqlDB, err := db.DB()
	tools.PanicOnErr(err)
	sqlDB.SetMaxOpenConns(1)

	DB = db
	tools.PanicOnErr(DB.AutoMigrate(autoMigrateModels...))
}

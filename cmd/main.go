package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "blogapi/api/v1"
	"blogapi/config"
	"blogapi/dao"
	"blogapi/internal/storage"
	myvalidator "blogapi/internal/validator"
	"blogapi/model"
	"blogapi/router"
	"blogapi/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../"
	}
	config.InitConfig(configPath)
	config.InitRedis()

	db, err := gorm.Open(mysql.Open(config.GlobalConfig.MySQL.DSN), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database", "err", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.PostTag{},
		&model.Category{},
		&model.Tag{},
		&model.FriendLink{},
		&model.Media{},
		&model.SiteConfig{},
	); err != nil {
		log.Fatal("auto migration failed", "err", err)
	}

	userDAO := dao.NewUserDAO(db)
	postDAO := dao.NewPostDAO(db)
	postTagDAO := dao.NewPostTagDAO(db)
	categoryDAO := dao.NewCategoryDAO(db)
	tagDAO := dao.NewTagDAO(db)
	linkDAO := dao.NewFriendLinkDAO(db)
	mediaDAO := dao.NewMediaDAO(db)
	configDAO := dao.NewSiteConfigDAO(db)

	fileStorage := storage.NewFileStorage(config.GlobalConfig.Upload.Path, config.GlobalConfig.Upload.MaxSize)

	authService := service.NewAuthService(userDAO, config.RedisClient)
	postService := service.NewPostService(postDAO, postTagDAO, categoryDAO, tagDAO, userDAO)
	categoryService := service.NewCategoryService(categoryDAO, postDAO)
	tagService := service.NewTagService(tagDAO)
	linkService := service.NewFriendLinkService(linkDAO)
	mediaService := service.NewMediaService(mediaDAO, fileStorage)
	configService := service.NewConfigService(configDAO)
	dashboardService := service.NewDashboardService(postDAO, categoryDAO, tagDAO, linkDAO)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("slug", myvalidator.IsSlug); err != nil {
			log.Fatal("failed to register slug validator", "err", err)
		}
	}

	r := router.InitRouter(&router.Handlers{
		Auth:       v1.NewAuthAPI(authService),
		Category:   v1.NewCategoryAPI(categoryService),
		Tag:        v1.NewTagAPI(tagService),
		Post:       v1.NewPostAPI(postService),
		FriendLink: v1.NewFriendLinkAPI(linkService),
		Media:      v1.NewMediaAPI(mediaService),
		Config:     v1.NewConfigAPI(configService),
		Dashboard:  v1.NewDashboardAPI(dashboardService),
		Session:    authService.Session,
	})

	if err := r.Run(config.GlobalConfig.Server.Port); err != nil {
		log.Fatal("server exited", "err", err)
	}
}

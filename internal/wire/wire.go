package wire

import (
	"Showcase/internal/api"
	"Showcase/internal/api/config"
	"Showcase/internal/api/handler"
	"Showcase/internal/job"
	"Showcase/internal/pkg/bus"
	"Showcase/internal/pkg/consts"
	"Showcase/internal/pkg/cron"
	"Showcase/internal/pkg/kvstore"
	"Showcase/internal/service"
	"Showcase/internal/store"
	log "log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	BlogSvc      service.BlogService
	GuestbookSvc service.GuestbookService
	AnalyticsSvc service.AnalyticsService
}

// BuildApplication 组装依赖。db 为 nil 表示远程存储未配置：
// 有本地文件路径时降级到文件存储，否则注入空实现，界面呈空态
func BuildApplication(db *gorm.DB, redisReady bool, cfg *config.Config) (*ApplicationContainer, error) {
	var changeBus bus.Bus
	if redisReady {
		changeBus = bus.NewRedisBus()
	} else {
		changeBus = bus.NewMemBus()
	}

	var kv *kvstore.Store
	var err error
	if cfg.Local.Path != "" {
		kv, err = kvstore.Open(cfg.Local.Path)
		if err != nil {
			return nil, err
		}
	}

	var contentStore store.Store
	switch {
	case db != nil:
		contentStore = store.NewGormStore(db, changeBus)
	case kv != nil:
		local := store.NewLocalStore(kv, changeBus)
		seedLocalStore(local)
		contentStore = local
		log.Info("remote store not configured, using local file store")
	default:
		contentStore = store.NewNoopStore()
		log.Warn("no store configured, content endpoints degrade to empty state")
	}

	var liked service.LikedSet
	if redisReady {
		liked = service.NewRedisLikedSet()
	} else {
		if kv == nil {
			kv, err = kvstore.Open("./data/showcase.json")
			if err != nil {
				return nil, err
			}
		}
		liked = service.NewKVLikedSet(kv)
	}

	blogService := service.NewBlogService(contentStore)
	guestbookService := service.NewGuestbookService(contentStore, liked)
	analyticsService := service.NewAnalyticsService(contentStore)
	contactService := service.NewContactService(cfg.Email)
	contentService, err := service.NewContentService(cfg.Content)
	if err != nil {
		return nil, err
	}

	handlers := &api.HandlersGroup{
		BlogHandler:      handler.NewBlogHandler(blogService),
		GuestbookHandler: handler.NewGuestbookHandler(guestbookService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		ContentHandler:   handler.NewContentHandler(contentService),
		ContactHandler:   handler.NewContactHandler(contactService),
		WSHandler:        handler.NewWsHandler(changeBus),
	}

	router := api.SetupRouter(handlers)

	analyticsJob := job.NewAnalyticsJob(analyticsService)
	cronMgr := cron.NewCronManager(analyticsJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		BlogSvc:      blogService,
		GuestbookSvc: guestbookService,
		AnalyticsSvc: analyticsService,
	}, nil
}

// seedLocalStore 首次启动时向本地存储播种示例数据。
// 本地与远程是两份独立播种的数据集，互不保证一致
func seedLocalStore(local *store.LocalStore) {
	raw, err := os.ReadFile("./configs/seed.json")
	if err != nil {
		return
	}

	var seed map[string][]store.Row
	if err = json.Unmarshal(raw, &seed); err != nil {
		log.Warn("decode seed file failed", "err", err)
		return
	}

	for _, table := range []string{consts.TableBlogPosts, consts.TableGuestbook} {
		if rows, ok := seed[table]; ok {
			if err = local.SeedIfEmpty(table, rows); err != nil {
				log.Warn("seed local store failed", "table", table, "err", err)
			}
		}
	}
}

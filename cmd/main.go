package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/spf13/pflag"

	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"

	"resume-analyzer-go/internal/analyzer"
	"resume-analyzer-go/internal/api/handler"
	"resume-analyzer-go/internal/api/router"
	"resume-analyzer-go/internal/config"
	applogger "resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/matcher"
	"resume-analyzer-go/internal/parser"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	applogger.Init(applogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	glog.SetLogger(hertzadapter.From(applogger.Logger))
	glog.Info("配置和日志初始化成功")

	decoder := parser.NewDocumentDecoder(parser.WithMaxPages(cfg.Document.MaxPages))
	glog.Info("文档解码器初始化成功")

	resumeAnalyzer := analyzer.NewAnalyzer(
		analyzer.WithDetector(parser.NewEducationDetector(
			parser.WithMinConfidence(cfg.Analyzer.MinInstitutionConfidence),
			parser.WithMinContextScore(cfg.Analyzer.MinContextScore),
		)),
		analyzer.WithMaxSkills(cfg.Analyzer.MaxSkills),
		analyzer.WithInstitutionMinConfidence(cfg.Analyzer.InstitutionMinConfidence),
	)
	glog.Info("简历分析器初始化成功")

	jobMatcher := matcher.NewJobMatcher(
		matcher.WithMinMatchScore(cfg.Matcher.MinMatchScore),
		matcher.WithMaxMatches(cfg.Matcher.MaxMatches),
	)
	glog.Info("岗位匹配器初始化成功")

	resumeHandler := handler.NewResumeHandler(cfg, decoder, resumeAnalyzer, jobMatcher)
	jobHandler := handler.NewJobHandler(jobMatcher, resumeAnalyzer.Taxonomy())

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(int(cfg.Server.MaxUploadBytes)),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler, jobHandler)
	glog.Info("HTTP路由注册成功")
	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

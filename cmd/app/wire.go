//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/faq-chatbot/internal/bootstrap"
	"github.com/yanqian/faq-chatbot/internal/domain/faq"
	"github.com/yanqian/faq-chatbot/internal/infra/config"
	"github.com/yanqian/faq-chatbot/internal/infra/llm/chatgpt"
	httpiface "github.com/yanqian/faq-chatbot/internal/interface/http"
	"github.com/yanqian/faq-chatbot/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideFAQConfig,
		provideChatGPTClient,
		provideCorpusSource,
		provideAnswerCache,
		faq.NewStore,
		faq.NewGenerator,
		faq.NewService,
		wire.Bind(new(faq.ChatClient), new(*chatgpt.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"lead_folder_generator/config"
	"lead_folder_generator/generator"
	"lead_folder_generator/history"
	"lead_folder_generator/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "config.json", "path to config.json")
	addr := flag.String("addr", "", "http listen address (overrides config server_addr)")
	dataDir := flag.String("data", "", "data directory for history (overrides config data_dir)")
	mock := flag.Bool("mock", false, "use the mock LLM instead of OpenAI")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ServerAddr = *addr
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	llm, err := buildLLM(cfg, *mock)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var agent *generator.Agent
	if llm != nil {
		agent, err = generator.NewAgent(llm)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	store := history.NewStore(filepath.Join(cfg.DataDir, "history.json"), log.Default())
	srv, err := server.New(agent, store, history.NewIDSource(), log.Default())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Printf("Starting web server on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, srv.Routes()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildLLM returns nil when no credential is configured; the server then
// rejects generation requests until a key is provided.
func buildLLM(cfg config.Config, mock bool) (generator.LLMClient, error) {
	if mock {
		log.Printf("using mock LLM")
		return generator.MockLLM{}, nil
	}
	if cfg.LLM.APIKey == "" {
		log.Printf("warning: no LLM api key configured; generation requests will fail until OPENAI_API_KEY is set")
		return nil, nil
	}
	return generator.NewOpenAILLM(generator.LLMSettings{
		APIKey:       cfg.LLM.APIKey,
		BaseURL:      cfg.LLM.BaseURL,
		ModelFast:    cfg.LLM.ModelFast,
		ModelQuality: cfg.LLM.ModelQuality,
	})
}

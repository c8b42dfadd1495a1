// Package servecmder provides the serve command for running the API server.
package servecmder

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fractalhq/fractal/api"
	"github.com/fractalhq/fractal/pkg/config"
	"github.com/fractalhq/fractal/pkg/dotdir"
	"github.com/fractalhq/fractal/pkg/eventstream"
	"github.com/fractalhq/fractal/pkg/eventstream/kafka"
	"github.com/fractalhq/fractal/pkg/eventstream/nop"
	"github.com/fractalhq/fractal/pkg/graph"
	"github.com/fractalhq/fractal/pkg/inherit"
	"github.com/fractalhq/fractal/pkg/llm/ollama"
	"github.com/fractalhq/fractal/pkg/logger"
	"github.com/fractalhq/fractal/pkg/storage"
	"github.com/fractalhq/fractal/pkg/storage/inmemory"
	"github.com/fractalhq/fractal/pkg/storage/postgres"
	"github.com/fractalhq/fractal/pkg/storage/sqlite"
	"github.com/fractalhq/fractal/pkg/workspace"
)

// serveFlags is the flag registry for the serve command. Every flag maps to
// a dotted viper key so flags, env vars, and config.toml share one
// precedence chain.
var serveFlags = config.FlagSet{
	config.FlagAPIListen: {
		Name: "listen", Shorthand: "l", ViperKey: "api.listen",
		Description: "Address for the API server to listen on",
	},
	config.FlagStorageDriver: {
		Name: "storage-driver", ViperKey: "storage.driver",
		Description: "Storage driver (sqlite, postgres, inmemory)",
	},
	config.FlagSQLite: {
		Name: "sqlite", Shorthand: "s", ViperKey: "storage.sqlite_path",
		Description: "Path to SQLite database (default: fractal.db in the .fractal directory)",
	},
	config.FlagPostgresDSN: {
		Name: "postgres-dsn", ViperKey: "storage.postgres_dsn",
		Description: "PostgreSQL connection string",
	},
	config.FlagDeviceA: {
		Name: "device-a", ViperKey: "llm.device_a_url",
		Description: "Ollama URL serving the main reasoner",
	},
	config.FlagDeviceB: {
		Name: "device-b", ViperKey: "llm.device_b_url",
		Description: "Ollama URL serving the graph builder and exploration models",
	},
	config.FlagMainReasonerModel: {
		Name: "main-reasoner-model", ViperKey: "llm.main_reasoner_model",
		Description: "Model serving chat, summarize, and merge calls",
	},
	config.FlagGraphBuilderModel: {
		Name: "graph-builder-model", ViperKey: "llm.graph_builder_model",
		Description: "Model serving knowledge-graph extraction",
	},
	config.FlagExplorationModel: {
		Name: "exploration-model", ViperKey: "llm.exploration_model",
		Description: "Optional model serving exploration nodes",
	},
	config.FlagEventstreamProv: {
		Name: "eventstream-provider", ViperKey: "eventstream.provider",
		Description: "Eventstream provider (none, kafka)",
	},
	config.FlagEventstreamBrokers: {
		Name: "eventstream-brokers", ViperKey: "eventstream.brokers",
		Description: "Comma-separated Kafka broker addresses",
	},
}

var serveFlagKeys = []string{
	config.FlagAPIListen,
	config.FlagStorageDriver,
	config.FlagSQLite,
	config.FlagPostgresDSN,
	config.FlagDeviceA,
	config.FlagDeviceB,
	config.FlagMainReasonerModel,
	config.FlagGraphBuilderModel,
	config.FlagExplorationModel,
	config.FlagEventstreamProv,
	config.FlagEventstreamBrokers,
}

type ServeCommander struct {
	apiListen         string
	storageDriver     string
	sqlitePath        string
	postgresDSN       string
	deviceA           string
	deviceB           string
	mainReasonerModel string
	graphBuilderModel string
	explorationModel  string
	eventProvider     string
	eventBrokers      string
	timeoutSeconds    uint
	recentMessages    uint
	configDir         string
	debug             bool

	logger *zap.Logger
}

const serveLongDesc string = `Run the Fractal API server.

The server exposes the node workspace over HTTP: creating and branching
nodes, chatting, summarizing, merging, and the knowledge graph.

Storage, model routing, and the eventstream are configured via flags,
FRACTAL_ environment variables, or config.toml in the .fractal directory
(flags take precedence, then env, then file).

Examples:
  fractal serve
  fractal serve --listen :9090 --storage-driver inmemory
  fractal serve --sqlite ./fractal.db --device-a http://gpu-a:11434`

const serveShortDesc string = "Run the Fractal API server"

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			cmder.configDir, _ = cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(cmder.configDir)
			if err != nil {
				return err
			}
			config.BindRegisteredFlags(v, cmd, serveFlags, serveFlagKeys)

			// Read the effective values back through the precedence chain.
			cmder.apiListen = v.GetString("api.listen")
			cmder.storageDriver = v.GetString("storage.driver")
			cmder.sqlitePath = v.GetString("storage.sqlite_path")
			cmder.postgresDSN = v.GetString("storage.postgres_dsn")
			cmder.deviceA = v.GetString("llm.device_a_url")
			cmder.deviceB = v.GetString("llm.device_b_url")
			cmder.mainReasonerModel = v.GetString("llm.main_reasoner_model")
			cmder.graphBuilderModel = v.GetString("llm.graph_builder_model")
			cmder.explorationModel = v.GetString("llm.exploration_model")
			cmder.eventProvider = v.GetString("eventstream.provider")
			cmder.eventBrokers = v.GetString("eventstream.brokers")
			cmder.timeoutSeconds = v.GetUint("llm.timeout_seconds")
			cmder.recentMessages = v.GetUint("llm.recent_messages")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			return cmder.run()
		},
	}

	config.AddStringFlag(cmd, serveFlags, config.FlagAPIListen, &cmder.apiListen)
	config.AddStringFlag(cmd, serveFlags, config.FlagStorageDriver, &cmder.storageDriver)
	config.AddStringFlag(cmd, serveFlags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, serveFlags, config.FlagPostgresDSN, &cmder.postgresDSN)
	config.AddStringFlag(cmd, serveFlags, config.FlagDeviceA, &cmder.deviceA)
	config.AddStringFlag(cmd, serveFlags, config.FlagDeviceB, &cmder.deviceB)
	config.AddStringFlag(cmd, serveFlags, config.FlagMainReasonerModel, &cmder.mainReasonerModel)
	config.AddStringFlag(cmd, serveFlags, config.FlagGraphBuilderModel, &cmder.graphBuilderModel)
	config.AddStringFlag(cmd, serveFlags, config.FlagExplorationModel, &cmder.explorationModel)
	config.AddStringFlag(cmd, serveFlags, config.FlagEventstreamProv, &cmder.eventProvider)
	config.AddStringFlag(cmd, serveFlags, config.FlagEventstreamBrokers, &cmder.eventBrokers)

	return cmd
}

func (c *ServeCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

	store, err := c.createStore()
	if err != nil {
		return err
	}
	defer store.Close()

	publisher, err := c.createPublisher()
	if err != nil {
		return err
	}
	defer publisher.Close()

	llmClient := ollama.New(ollama.Config{
		DeviceAURL:        c.deviceA,
		DeviceBURL:        c.deviceB,
		MainReasonerModel: c.mainReasonerModel,
		GraphBuilderModel: c.graphBuilderModel,
		ExplorationModel:  c.explorationModel,
		Timeout:           time.Duration(c.timeoutSeconds) * time.Second,
	})
	defer llmClient.Close()

	builder := inherit.NewBuilder(store, inherit.Config{
		RecentMessages: int(c.recentMessages),
	})
	graphSvc := graph.NewService(store, c.logger)
	ws := workspace.NewService(store, llmClient, builder, graphSvc, publisher, c.logger)

	server := api.NewServer(api.Config{ListenAddr: c.apiListen}, ws, c.logger)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		return server.Shutdown()
	}
}

func (c *ServeCommander) createStore() (storage.Driver, error) {
	switch c.storageDriver {
	case "sqlite", "":
		path := c.sqlitePath
		if path == "" {
			ddm := dotdir.NewManager()
			dir, err := ddm.Target(c.configDir)
			if err != nil {
				return nil, fmt.Errorf("resolving .fractal directory: %w", err)
			}
			path = filepath.Join(dir, "fractal.db")
		}
		store, err := sqlite.NewDriver(path)
		if err != nil {
			return nil, fmt.Errorf("creating SQLite store: %w", err)
		}
		c.logger.Info("using SQLite storage", zap.String("path", path))
		return store, nil

	case "postgres":
		if c.postgresDSN == "" {
			return nil, fmt.Errorf("postgres driver requires --postgres-dsn")
		}
		store, err := postgres.NewDriver(context.Background(), c.postgresDSN)
		if err != nil {
			return nil, fmt.Errorf("creating PostgreSQL store: %w", err)
		}
		c.logger.Info("using PostgreSQL storage")
		return store, nil

	case "inmemory":
		c.logger.Info("using in-memory storage")
		return inmemory.NewDriver(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q (want sqlite, postgres, or inmemory)", c.storageDriver)
	}
}

func (c *ServeCommander) createPublisher() (eventstream.Publisher, error) {
	switch c.eventProvider {
	case "", "none":
		return nop.NewPublisher(), nil

	case "kafka":
		brokers := strings.Split(c.eventBrokers, ",")
		for i := range brokers {
			brokers[i] = strings.TrimSpace(brokers[i])
		}
		publisher, err := kafka.NewPublisher(kafka.Config{Brokers: brokers})
		if err != nil {
			return nil, fmt.Errorf("creating Kafka publisher: %w", err)
		}
		c.logger.Info("publishing node events to Kafka", zap.Strings("brokers", brokers))
		return publisher, nil

	default:
		return nil, fmt.Errorf("unknown eventstream provider %q (want none or kafka)", c.eventProvider)
	}
}

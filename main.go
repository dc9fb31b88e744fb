package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"streamd/config"
	"streamd/database"
	"streamd/logger"
	"streamd/web"
	"streamd/web/service"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func initLogging() {
	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
}

func loadConfig() {
	_ = godotenv.Load()
	if err := config.LoadFile(); err != nil {
		log.Fatal("load config file failed: ", err)
	}
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	loadConfig()
	initLogging()
	defer logger.CloseLogger()

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDB()

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			logger.Info("reloading web server")
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func runMigrate() {
	loadConfig()
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println("migrate failed:", err)
		os.Exit(1)
	}
	defer database.CloseDB()
	fmt.Println("migrate done")
}

type seedTitle struct {
	Title    string `json:"title"`
	Synopsis string `json:"synopsis"`
}

// runSeed imports catalog titles from a JSON file, an array of
// {title, synopsis} objects.
func runSeed(file string) {
	loadConfig()
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println("seed failed:", err)
		os.Exit(1)
	}
	defer database.CloseDB()

	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Println("seed failed:", err)
		os.Exit(1)
	}

	var titles []seedTitle
	if err := json.Unmarshal(data, &titles); err != nil {
		fmt.Println("seed failed:", err)
		os.Exit(1)
	}

	titleService := service.NewTitleService(database.GetDB())
	for _, t := range titles {
		if _, err := titleService.Create(t.Title, t.Synopsis); err != nil {
			fmt.Println("seed failed:", err)
			os.Exit(1)
		}
	}
	fmt.Printf("seeded %d titles\n", len(titles))
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "streamd",
		Short: "streaming-service backend",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "create or update the database schema",
		Run: func(cmd *cobra.Command, args []string) {
			runMigrate()
		},
	}

	var seedFile string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "import catalog titles from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(seedFile)
		},
	}
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "catalog.json", "path to the catalog JSON file")

	rootCmd.AddCommand(runCmd, migrateCmd, seedCmd)

	if len(os.Args) == 1 {
		runWebServer()
		return
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

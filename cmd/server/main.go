package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gliderlabs/ssh"
	"github.com/hmidgg/chess/pkg"
)

func main() {
	logPath := flag.String("log", "./server.log", "path to log file")
	addr := flag.String("addr", pkg.SshPort, "address to listen on")
	hostKey := flag.String("hostkey", "", "SSH host key file, a fresh key is generated when empty")
	command := flag.String("cmd", "", "board program run for every session, defaults to chessterm next to this binary")
	flag.Parse()
	pkg.InitLog(*logPath, "SERVER: ")

	if *command == "" {
		*command = defaultCommand()
	}
	s, err := pkg.NewServer(*addr, *hostKey, *command, flag.Args()...)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		log.Printf("Listening at %s, running %s", *addr, *command)
		if err := s.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Wait for teminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	<-sigc
	log.Println("Server stopped")
	s.Close()
}

func defaultCommand() string {
	exe, err := os.Executable()
	if err != nil {
		return "chessterm"
	}
	return filepath.Join(filepath.Dir(exe), "chessterm")
}

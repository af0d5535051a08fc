package pkg

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"github.com/pkg/errors"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

// Server hosts the board over SSH. Every session gets its own board
// process on a pseudo-terminal; sessions never share a game.
type Server struct {
	*ssh.Server
	Command string
	Args    []string
}

// NewServer prepares a server running command with args for every session.
// Without a host key file an ephemeral ed25519 key is generated.
func NewServer(addr, hostKeyFile, command string, args ...string) (*Server, error) {
	srv := &Server{Command: command, Args: args}
	s := &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     srv.sshHandle,
	}

	if hostKeyFile != "" {
		if err := s.SetOption(ssh.HostKeyFile(hostKeyFile)); err != nil {
			return nil, errors.Wrapf(err, "host key %s", hostKeyFile)
		}
	} else {
		signer, err := generateHostKey()
		if err != nil {
			return nil, err
		}
		s.AddHostKey(signer)
	}
	srv.Server = s
	return srv, nil
}

func generateHostKey() (gossh.Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "generate host key")
	}
	signer, err := gossh.NewSignerFromKey(priv)
	if err != nil {
		return nil, errors.Wrap(err, "host key signer")
	}
	return signer, nil
}

func setWinsize(f *os.File, w, h int) {
	if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)}); err != nil {
		log.Printf("resize: %v", err)
	}
}

func (srv *Server) sshHandle(s ssh.Session) {
	id := petname.Generate(2, "-")
	ptyReq, winCh, isPty := s.Pty()
	if !isPty {
		io.WriteString(s, "non-interactive terminals are not supported\n")
		s.Exit(1)
		return
	}
	log.Printf("session %s: %s connected from %s", id, s.User(), s.RemoteAddr())

	cmdCtx, cancelCmd := context.WithCancel(s.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, srv.Command, srv.Args...)
	cmd.Env = append(s.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(ptyReq.Window.Height),
		Cols: uint16(ptyReq.Window.Width),
	})
	if err != nil {
		io.WriteString(s, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		s.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, s)
	}()
	io.Copy(s, f)

	err = cmd.Wait()
	log.Printf("session %s: closed (%v)", id, err)
	if err != nil {
		s.Exit(1)
		return
	}
	s.Exit(0)
}

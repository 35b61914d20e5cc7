package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"net"
	"net/url"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/nestorwheelock/acid-303/src/audio"
	"golang.org/x/sync/errgroup"
)

const sockFileName = "/tmp/acid303.sock"

func main() {
	noMIDI := flag.Bool("no-midi", false, "disable live MIDI input")
	flag.Parse()
	log.SetFlags(log.Lshortfile)
	log.Printf("NumCPU: %v\n", runtime.NumCPU())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	player, err := audio.NewPlayer()
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	defer player.Close()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalCh)
		cancel()
	}()
	go func() {
		sig := <-signalCh
		log.Printf("caught signal %s: shutting down...\n", sig)
		cancel()
	}()

	err = withIPCConnection(ctx, func(conn net.Conn) error {
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return player.Start(ctx)
		})
		g.Go(func() error {
			return receiveCommands(ctx, conn, player)
		})
		if !*noMIDI {
			g.Go(func() error {
				return bridgeMIDI(ctx, player)
			})
		}
		return g.Wait()
	})
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	log.Println("main() ended.")
}

// withIPCConnection, receiveCommands, and the line-splitting below follow
// the teacher's own unix-socket control-line plumbing nearly unchanged: the
// transport itself isn't acid-303-specific, only the commands it dispatches
// are (see audio.Player.Update), so there was nothing domain-specific left
// to adapt here.
func withIPCConnection(ctx context.Context, f func(net.Conn) error) error {
	os.Remove(sockFileName)
	listener, err := new(net.ListenConfig).Listen(ctx, "unix", sockFileName)
	if err != nil {
		return err
	}
	defer func() {
		log.Println("closing IPC...")
		if err := listener.Close(); err != nil {
			log.Printf("error while closing listener: %v", err)
		}
		os.Remove(sockFileName)
	}()
	log.Println("listening for control connections...")
	conn, err := listener.Accept()
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("error while closing connection: %v", err)
		}
	}()
	return f(conn)
}

func receiveCommands(ctx context.Context, conn net.Conn, player *audio.Player) error {
	reader := bufio.NewReader(conn)
	var line []byte
loop:
	for {
		select {
		case <-ctx.Done():
			log.Println("connection interrupted")
			break loop
		default:
		}
		next, isPrefix, err := reader.ReadLine()
		if err == io.EOF {
			break loop
		}
		if err != nil {
			return err
		}
		line = append(line, next...)
		if isPrefix {
			continue
		}
		command, err := splitCommandLine(string(line))
		line = line[:0]
		if err != nil {
			log.Println("failed to parse command:", err)
			continue
		}
		if err := player.Update(command); err != nil {
			log.Println("command failed:", err)
		}
	}
	log.Println("receiveCommands() ended.")
	return nil
}

// splitCommandLine splits one space-delimited control line into fields,
// URL-unescaping each one so the config command's JSON argument can carry
// spaces.
func splitCommandLine(line string) ([]string, error) {
	fields := strings.Split(line, " ")
	for i, item := range fields {
		escaped, err := url.QueryUnescape(item)
		if err != nil {
			return nil, err
		}
		fields[i] = escaped
	}
	return fields, nil
}

func bridgeMIDI(ctx context.Context, player *audio.Player) error {
	ch := audio.ListenMIDI(ctx)
	for data := range ch {
		player.ApplyMIDI(data)
	}
	return nil
}

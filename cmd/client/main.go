package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"pingly/domain"
	"pingly/domain/event"
	"pingly/feed"
	"pingly/grpc/client"
	"pingly/internal"
	"pingly/projection"
	"pingly/runtime/workers"
	"pingly/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logger := internal.LoggerFromString(config.LogLevel)
	color.Enable = config.Colours

	conn, err := grpc.NewClient(config.ServerAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", config.ServerAddr, err)
	}
	defer conn.Close()

	app := &app{
		config:   config,
		logger:   logger,
		conn:     conn,
		accounts: client.NewAccountClient(conn),
	}

	fmt.Println("pingly — /register, /login, /list, /search, /open, /send, /close, /quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(app.prompt())
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			app.logout()
			return nil
		}
		if err := app.dispatch(line); err != nil {
			color.Red.Printf("error: %v\n", err)
		}
	}
	app.logout()
	return scanner.Err()
}

// app holds the per-process state; session is nil until a login succeeds.
type app struct {
	config   Config
	logger   *slog.Logger
	conn     *grpc.ClientConn
	accounts *client.AccountClient
	session  *session
}

// session bundles everything created at login and torn down at logout.
type session struct {
	cancel     context.CancelFunc
	engine     services.ISyncEngine
	messages   services.IMessageService
	directory  services.IDirectory
	bus        *feed.Bus
	supervisor *workers.Supervisor

	openPeer     string
	openTimeline *projection.Timeline
	printSub     *feed.Subscription
}

func (a *app) prompt() string {
	if a.session == nil {
		return "> "
	}
	if a.session.openPeer != "" {
		return fmt.Sprintf("[%s]> ", shortID(a.session.openPeer))
	}
	return fmt.Sprintf("(%s)> ", shortID(a.session.engine.CurrentUser()))
}

func (a *app) dispatch(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/register":
		if len(fields) != 4 {
			return fmt.Errorf("usage: /register <email> <username> <password>")
		}
		return a.register(fields[1], fields[2], fields[3])
	case "/login":
		if len(fields) != 3 {
			return fmt.Errorf("usage: /login <email> <password>")
		}
		return a.login(fields[1], fields[2])
	case "/logout":
		a.logout()
		return nil
	case "/list":
		return a.list()
	case "/search":
		if len(fields) < 2 {
			return fmt.Errorf("usage: /search <query>")
		}
		return a.search(strings.Join(fields[1:], " "))
	case "/open":
		if len(fields) != 2 {
			return fmt.Errorf("usage: /open <user-id>")
		}
		return a.open(fields[1])
	case "/close":
		a.closeConversation()
		return nil
	default:
		if strings.HasPrefix(fields[0], "/") {
			return fmt.Errorf("unknown command %s", fields[0])
		}
		return a.send(line)
	}
}

func (a *app) register(email, username, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sess, err := a.accounts.Register(ctx, email, username, password)
	if err != nil {
		return err
	}
	color.Green.Printf("registered as %s\n", username)
	return a.startSession(sess)
}

func (a *app) login(email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sess, err := a.accounts.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return a.startSession(sess)
}

func (a *app) startSession(sess services.Session) error {
	a.logout()

	ctx, cancel := context.WithCancel(context.Background())
	feedClient := client.NewFeedClient(a.conn, sess.UserID, sess.Token)
	bus := feed.NewBus(a.logger)
	engine := services.NewSyncEngine(a.logger, feedClient, feedClient, bus)

	if err := engine.Login(ctx, sess.UserID); err != nil {
		cancel()
		return err
	}

	pump := workers.NewFeedPump(a.logger, feedClient, bus, sess.UserID, a.config.ReconnectWait, 0)
	supervisor := workers.NewSupervisor(a.logger, a.config.ReconnectWait).Add(pump)
	go supervisor.Run(ctx)

	a.session = &session{
		cancel:     cancel,
		engine:     engine,
		messages:   services.NewMessageService(feedClient),
		directory:  services.NewDirectoryService(feedClient, a.config.ExcludeKnownPeers),
		bus:        bus,
		supervisor: supervisor,
	}
	color.Green.Printf("logged in as %s\n", sess.UserID)
	return nil
}

func (a *app) logout() {
	if a.session == nil {
		return
	}
	a.closeConversation()
	a.session.engine.Logout()
	a.session.supervisor.Stop()
	a.session.cancel()
	a.session = nil
}

func (a *app) list() error {
	if a.session == nil {
		return fmt.Errorf("not logged in")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	summaries := a.session.engine.Conversations(ctx)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Peer", "Username", "Last message", "At"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, summary := range summaries {
		table.Append([]string{
			shortID(summary.PeerID),
			summary.Profile.Username,
			truncate(summary.LastMessage, 48),
			summary.LastMessageAt.Local().Format("Jan 02 15:04"),
		})
	}
	table.Render()
	return nil
}

func (a *app) search(query string) error {
	if a.session == nil {
		return fmt.Errorf("not logged in")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profiles, err := a.session.directory.Search(ctx,
		a.session.engine.CurrentUser(), query, a.session.engine.KnownPeers())
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Println("no matches")
		return nil
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Username"})
	table.SetBorder(false)
	for _, profile := range profiles {
		table.Append([]string{profile.ID, profile.Username})
	}
	table.Render()
	return nil
}

func (a *app) open(peerID string) error {
	if a.session == nil {
		return fmt.Errorf("not logged in")
	}
	a.closeConversation()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	timeline, err := a.session.engine.SelectPeer(ctx, peerID)
	if err != nil {
		return err
	}
	a.session.openPeer = peerID
	a.session.openTimeline = timeline

	for _, message := range timeline.View() {
		a.printMessage(message)
	}

	// Live echo of anything landing in this conversation, the user's
	// own sends included.
	key := domain.NewConversationKey(a.session.engine.CurrentUser(), peerID)
	a.session.printSub = a.session.bus.Subscribe(feed.MatchConversation(key), printSink{app: a})
	return nil
}

func (a *app) closeConversation() {
	if a.session == nil || a.session.openPeer == "" {
		return
	}
	if a.session.printSub != nil {
		a.session.printSub.Close()
		a.session.printSub = nil
	}
	a.session.engine.ClearPeer()
	a.session.openPeer = ""
	a.session.openTimeline = nil
}

func (a *app) send(content string) error {
	if a.session == nil {
		return fmt.Errorf("not logged in")
	}
	if a.session.openPeer == "" {
		return fmt.Errorf("no conversation open, use /open first")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The echo comes back through the feed; nothing to print here.
	_, err := a.session.messages.Send(ctx,
		a.session.engine.CurrentUser(), a.session.openPeer, content)
	return err
}

func (a *app) printMessage(message domain.Message) {
	stamp := message.CreatedAt.Local().Format("15:04")
	if a.session != nil && message.SenderID == a.session.engine.CurrentUser() {
		color.Green.Printf("%s you: %s\n", stamp, message.Content)
	} else {
		color.Cyan.Printf("%s %s: %s\n", stamp, shortID(message.SenderID), message.Content)
	}
}

// printSink renders live events of the open conversation.
type printSink struct {
	app *app
}

func (p printSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageCreated:
		p.app.printMessage(evt.Message)
	case event.MessageUpdated:
		color.Yellow.Println("(edited)")
		p.app.printMessage(evt.Message)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// shortID abbreviates a uuid for display. Hand-typed ids may be
// shorter than the abbreviation and pass through unchanged.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

package factory

import (
	"errors"
	"fmt"

	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu"
	"github.com/kionell/osu-api/osu/bancho"
	"github.com/kionell/osu-api/osu/gatari"
	"github.com/kionell/osu-api/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrServerNotSupported = errors.New("server is not supported")

// Entry holds the components of one server. They are built once and shared.
type Entry struct {
	Client    osu.APIClient
	Scanner   *osu.URLScanner
	Generator osu.URLGenerator
}

// CredentialsHolder is implemented by clients that authorize with OAuth.
type CredentialsHolder interface {
	AddCredentials(clientId, clientSecret string)
}

// Factory resolves server names to their client, URL scanner and URL generator.
type Factory struct {
	logger        zerolog.Logger
	defaultServer model.Server
	entries       map[model.Server]Entry
	// priority is the order GetServerName tries scanners in.
	priority []model.Server
}

// NewEmpty returns a factory without any registered server.
func NewEmpty() *Factory {
	return &Factory{
		logger:        log.With().Str("module", "osu.factory").Logger(),
		defaultServer: model.ServerBancho,
		entries:       make(map[model.Server]Entry),
	}
}

// New registers every supported server with clients built from opts.
func New(opts ...osu.Option) *Factory {
	f := NewEmpty()
	banchoClient := bancho.NewClient(opts...)
	f.Register(model.ServerBancho, Entry{
		Client:    banchoClient,
		Scanner:   bancho.NewURLScanner(),
		Generator: banchoClient.URLGenerator(),
	})
	gatariClient := gatari.NewClient(opts...)
	f.Register(model.ServerGatari, Entry{
		Client:    gatariClient,
		Scanner:   gatari.NewURLScanner(),
		Generator: gatariClient.URLGenerator(),
	})
	return f
}

// NewFromConfig builds a factory from a loaded config file.
func NewFromConfig(config model.Config) (*Factory, error) {
	f := New(osu.WithRequestConfig(config.Request))
	if err := f.SetDefaultServer(config.General.DefaultServer); err != nil {
		return nil, err
	}
	if config.Bancho.ClientId != "" || config.Bancho.ClientSecret != "" {
		err := f.AddCredentials(model.ServerBancho.String(), config.Bancho.ClientId, config.Bancho.ClientSecret)
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Register adds or replaces a server. GetServerName tries servers in registration order.
func (f *Factory) Register(server model.Server, entry Entry) {
	if !utils.In(f.priority, server) {
		f.priority = append(f.priority, server)
	}
	f.entries[server] = entry
	f.logger.Debug().Msgf("Registered %s", server)
}

func (f *Factory) SetDefaultServer(name string) error {
	if name == "" {
		return nil
	}
	server, err := f.resolve(name)
	if err != nil {
		return err
	}
	f.defaultServer = server
	return nil
}

func (f *Factory) DefaultServer() model.Server {
	return f.defaultServer
}

func (f *Factory) Servers() []model.Server {
	return append([]model.Server(nil), f.priority...)
}

func (f *Factory) resolve(name string) (model.Server, error) {
	server := f.defaultServer
	if name != "" {
		var err error
		server, err = model.ParseServer(name)
		if err != nil {
			return server, err
		}
	}
	if _, ok := f.entries[server]; !ok {
		return server, fmt.Errorf("%w: %s", ErrServerNotSupported, server)
	}
	return server, nil
}

func (f *Factory) entry(name string) (Entry, error) {
	server, err := f.resolve(name)
	if err != nil {
		return Entry{}, err
	}
	return f.entries[server], nil
}

// GetAPIClient returns the client of name. An empty name selects the default server.
func (f *Factory) GetAPIClient(name string) (osu.APIClient, error) {
	e, err := f.entry(name)
	if err != nil {
		return nil, err
	}
	return e.Client, nil
}

func (f *Factory) CreateURLScanner(name string) (*osu.URLScanner, error) {
	e, err := f.entry(name)
	if err != nil {
		return nil, err
	}
	return e.Scanner, nil
}

func (f *Factory) CreateURLGenerator(name string) (osu.URLGenerator, error) {
	e, err := f.entry(name)
	if err != nil {
		return nil, err
	}
	return e.Generator, nil
}

// AddCredentials forwards OAuth credentials to the client of name.
func (f *Factory) AddCredentials(name, clientId, clientSecret string) error {
	e, err := f.entry(name)
	if err != nil {
		return err
	}
	holder, ok := e.Client.(CredentialsHolder)
	if !ok {
		return fmt.Errorf("%w: %s", osu.ErrNoAuthorization, e.Client.Server())
	}
	holder.AddCredentials(clientId, clientSecret)
	return nil
}

// GetServerName returns the first server, in priority order, with a link in text.
func (f *Factory) GetServerName(text string) (model.Server, bool) {
	for _, server := range f.priority {
		if f.entries[server].Scanner.HasServerURL(text) {
			return server, true
		}
	}
	return model.ServerBancho, false
}

// Capable resolves name and narrows its client to capability T.
func Capable[T osu.APIClient](f *Factory, name string, capability osu.Capability) (T, error) {
	var zero T
	client, err := f.GetAPIClient(name)
	if err != nil {
		return zero, err
	}
	return osu.Require[T](client, capability)
}

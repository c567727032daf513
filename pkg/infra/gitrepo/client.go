package gitrepo

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
	"github.com/m-mizutani/octoleak/pkg/utils/safe"
)

const DefaultCloneTimeout = 10 * time.Minute

// Client clones remote repositories into a working directory. With a configured workspace
// only one clone exists at a time: the workspace is reset before cloning and removed when
// the returned repository is closed.
type Client struct {
	workspace string
	timeout   time.Duration
	token     types.GitToken

	mutex sync.Mutex
}

var _ interfaces.GitClient = (*Client)(nil)

type Option func(*Client)

func WithWorkspace(dir string) Option {
	return func(x *Client) {
		x.workspace = dir
	}
}

func WithCloneTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.timeout = d
	}
}

// WithToken sets the default credential used when a clone request carries none
func WithToken(token types.GitToken) Option {
	return func(x *Client) {
		x.token = token
	}
}

func New(options ...Option) *Client {
	client := &Client{
		timeout: DefaultCloneTimeout,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) Clone(ctx context.Context, input *interfaces.CloneInput) (interfaces.GitRepository, error) {
	token := input.Token
	if token == "" {
		token = x.token
	}

	dir, release, err := x.acquire()
	if err != nil {
		return nil, err
	}

	cloneCtx := ctx
	if x.timeout > 0 {
		var cancel context.CancelFunc
		cloneCtx, cancel = context.WithTimeout(ctx, x.timeout)
		defer cancel()
	}

	logging.From(ctx).Info("cloning repository", "url", input.URL, "dir", dir)
	repo, err := git.PlainCloneContext(cloneCtx, dir, false, &git.CloneOptions{
		URL:        input.URL,
		Auth:       basicAuth(token),
		Tags:       git.NoTags,
		NoCheckout: true,
	})
	if err != nil {
		release()
		return nil, goerr.Wrap(types.ErrRepositoryAccess, "failed to clone repository",
			goerr.V("url", input.URL),
			goerr.V("cause", err.Error()),
		)
	}

	r := &Repository{repo: repo, release: release}
	if err := r.Fetch(cloneCtx, token); err != nil {
		release()
		return nil, goerr.Wrap(err, "failed to fetch after clone", goerr.V("url", input.URL))
	}

	return r, nil
}

// acquire returns an empty directory for a clone and the function that gives it back
func (x *Client) acquire() (string, func(), error) {
	if x.workspace == "" {
		dir, err := os.MkdirTemp("", "octoleak.*")
		if err != nil {
			return "", nil, goerr.Wrap(types.ErrRepositoryAccess, "failed to create temp directory", goerr.V("cause", err.Error()))
		}
		return dir, func() { safe.RemoveAll(dir) }, nil
	}

	x.mutex.Lock()
	if err := os.RemoveAll(x.workspace); err != nil {
		x.mutex.Unlock()
		return "", nil, goerr.Wrap(types.ErrRepositoryAccess, "failed to reset workspace",
			goerr.V("workspace", x.workspace),
			goerr.V("cause", err.Error()),
		)
	}
	if err := os.MkdirAll(x.workspace, 0700); err != nil {
		x.mutex.Unlock()
		return "", nil, goerr.Wrap(types.ErrRepositoryAccess, "failed to create workspace",
			goerr.V("workspace", x.workspace),
			goerr.V("cause", err.Error()),
		)
	}

	return x.workspace, func() {
		safe.RemoveAll(x.workspace)
		x.mutex.Unlock()
	}, nil
}

func basicAuth(token types.GitToken) transport.AuthMethod {
	if token == "" {
		return nil
	}
	return &http.BasicAuth{
		Username: "x-access-token",
		Password: string(token),
	}
}

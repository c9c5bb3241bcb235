package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/config"
	"tableflip.dev/todo/pkg/notify"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

// session holds what one invocation shares between commands. The store is
// only opened by commands that need it.
type session struct {
	verbose bool

	cfg     *config.Config
	notices *notify.Manager
	svc     *app.Service
}

func (s *session) configure() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s.cfg = cfg

	log.SetLevel(cfg.LogLevel)
	if s.verbose {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

// Service opens the store on first use and attaches the notice manager to
// the command's context.
func (s *session) Service(cmd *cobra.Command) (*app.Service, error) {
	if s.svc != nil {
		return s.svc, nil
	}
	if s.cfg == nil {
		if err := s.configure(); err != nil {
			return nil, err
		}
	}
	p, err := store.Load(s.cfg)
	if err != nil {
		return nil, err
	}
	log.WithField("path", s.cfg.BasePath()).Debug("commands: store opened")

	s.notices = notify.New(notify.WithDefaultDuration(s.cfg.NoticeDuration))
	cmd.SetContext(notify.WithManager(cmd.Context(), s.notices))
	s.svc = &app.Service{Persistence: p, Notices: s.notices}
	return s.svc, nil
}

// finish prints whatever notices are still showing and stops their timers.
func (s *session) finish(cmd *cobra.Command) {
	if s.notices == nil {
		return
	}
	pp := printers.PrettyPrint{Out: cmd.ErrOrStderr()}
	pp.Notices(s.notices.Notices()...)
	s.notices.Close()
}

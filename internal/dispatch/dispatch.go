// Package dispatch reads line commands and routes them to the three engines.
//
// Commands, one per line:
//
//	r                  reset every engine
//	i <id> <priority>  insert (priority, stamp) into engine id
//	d <id>             delete-max on engine id
//	l <id>             peek-max on engine id
//	x                  reset every engine and stop
//
// Engine ids are 1 (sorted list), 2 (array heap) and 3 (bucket queue); the
// names list, heap and bucket are accepted too.
// Successful d and l commands print "<priority> <payload>". Nothing is
// printed for an empty engine or for a line that cannot be applied.
package dispatch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/andrewortman/pqueue"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing arguments")
)

// Dispatcher owns one engine of each kind and the payload stamp counter.
type Dispatcher struct {
	Logger *logrus.Logger

	out     io.Writer
	engines map[pqueue.Kind]pqueue.Queue
	stamp   int
}

// New returns a dispatcher writing results to out. A nil logger discards logs.
func New(out io.Writer, logger *logrus.Logger) *Dispatcher {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	d := &Dispatcher{
		Logger:  logger,
		out:     out,
		engines: make(map[pqueue.Kind]pqueue.Queue, len(pqueue.Kinds)),
	}
	for _, k := range pqueue.Kinds {
		q, _ := pqueue.New(k)
		d.engines[k] = q
	}
	return d
}

// Engine returns the engine for kind, or nil.
func (d *Dispatcher) Engine(kind pqueue.Kind) pqueue.Queue {
	return d.engines[kind]
}

// Stamp returns the last payload stamp handed out.
func (d *Dispatcher) Stamp() int { return d.stamp }

// Run executes lines from in until EOF, an x command, or ctx is done.
// Lines that cannot be applied are logged and skipped; only output write
// failures and read errors stop the loop early.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		stop, err := d.Execute(scanner.Text())
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return errors.Wrap(scanner.Err(), "dispatch: read input")
}

// Execute applies one command line. stop is true after an x command.
// The returned error is non-nil only when writing output fails.
func (d *Dispatcher) Execute(line string) (stop bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	log := d.Logger.WithField("line", line)

	switch cmd, args := fields[0], fields[1:]; cmd {
	case "r":
		d.resetAll()
		log.Debug("reset all engines")
	case "x":
		d.resetAll()
		log.Debug("exit")
		return true, nil
	case "i":
		d.stamp++
		if len(args) < 2 {
			log.WithError(ErrMissingArgs).Warn("skipping insert")
			return false, nil
		}
		q, kind, err := d.lookup(args[0])
		if err != nil {
			log.WithError(err).Warn("skipping insert")
			return false, nil
		}
		priority, err := strconv.Atoi(args[1])
		if err != nil {
			log.WithError(err).Warn("skipping insert")
			return false, nil
		}
		if err := q.Insert(priority, d.stamp); err != nil {
			log.WithError(err).WithField("engine", kind).Warn("insert rejected")
			return false, nil
		}
		log.WithFields(logrus.Fields{"engine": kind, "priority": priority, "stamp": d.stamp}).Debug("inserted")
	case "d", "l":
		if len(args) < 1 {
			log.WithError(ErrMissingArgs).Warn("skipping command")
			return false, nil
		}
		q, kind, err := d.lookup(args[0])
		if err != nil {
			log.WithError(err).Warn("skipping command")
			return false, nil
		}
		var (
			e  pqueue.Entry
			ok bool
		)
		if cmd == "d" {
			e, ok = q.DeleteMax()
		} else {
			e, ok = q.PeekMax()
		}
		if !ok {
			log.WithField("engine", kind).Debug("engine empty")
			return false, nil
		}
		if _, err := fmt.Fprintf(d.out, "%d %d\n", e.Priority, e.Payload); err != nil {
			return false, errors.Wrap(err, "dispatch: write result")
		}
	default:
		log.WithError(ErrUnknownCommand).Warn("skipping line")
	}
	return false, nil
}

func (d *Dispatcher) lookup(id string) (pqueue.Queue, pqueue.Kind, error) {
	kind, err := pqueue.ParseKind(id)
	if err != nil {
		return nil, 0, err
	}
	return d.engines[kind], kind, nil
}

func (d *Dispatcher) resetAll() {
	for _, q := range d.engines {
		q.Reset()
	}
}

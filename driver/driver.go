// Package driver runs the console demonstrations of the manager catalog.
package driver

import (
	"fmt"
	"io"
	"sort"

	"github.com/machinefabric/managers-go"
	"github.com/pkg/errors"
)

const (
	StartMarker  = "Start"
	FinishMarker = "Finish"
)

// Run prints the start marker, asks c for Manager4 twice printing its resource
// whenever the instance is present, then prints the finish marker.
func Run(w io.Writer, c *managers.Context) error {
	if _, err := fmt.Fprintln(w, StartMarker); err != nil {
		return err
	}
	if err := demoManager4(w, c); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, FinishMarker)
	return err
}

// DoWork prints the resource payload on its own line. It does not check for
// absence: an absent resource panics with an AbsentResource error.
func DoWork(w io.Writer, res *managers.Resource) error {
	_, err := fmt.Fprintln(w, res.Value())
	return err
}

// Demo is one named demonstration run against a context
type Demo func(w io.Writer, c *managers.Context) error

var demos = map[string]Demo{
	"manager1":           demoManager1,
	"manager2":           demoManager2,
	"manager3-unchecked": demoManager3Unchecked,
	"manager3":           demoManager3,
	"manager4":           demoManager4,
}

// AllDemos is the order in which "all" runs the checked demos on one context
var AllDemos = []string{"manager1", "manager2", "manager3", "manager4"}

// DemoNames lists every demo accepted by RunDemo, plus "all"
func DemoNames() []string {
	names := make([]string, 0, len(demos)+1)
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, "all")
}

// RunDemo runs the named demo between the start and finish markers.
// A fault raised by dereferencing an absent value is returned as an error.
func RunDemo(w io.Writer, c *managers.Context, name string) (err error) {
	var steps []Demo
	if name == "all" {
		for _, n := range AllDemos {
			steps = append(steps, demos[n])
		}
	} else {
		demo, ok := demos[name]
		if !ok {
			return errors.Errorf("unknown demo %q", name)
		}
		steps = []Demo{demo}
	}

	defer recoverFault(&err)

	if _, err := fmt.Fprintln(w, StartMarker); err != nil {
		return err
	}
	for _, step := range steps {
		if err := step(w, c); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, FinishMarker)
	return err
}

func recoverFault(err *error) {
	r := recover()
	if r == nil {
		return
	}
	var merr *managers.ManagerError
	if e, ok := r.(error); ok && errors.As(e, &merr) {
		*err = errors.Wrap(merr, "fault")
		return
	}
	panic(r)
}

func demoManager1(w io.Writer, c *managers.Context) error {
	_, err := fmt.Fprintln(w, c.Manager1().GetResource())
	return err
}

func demoManager2(w io.Writer, c *managers.Context) error {
	_, err := fmt.Fprintln(w, c.Manager2().GetResource())
	return err
}

func demoManager3Unchecked(w io.Writer, c *managers.Context) error {
	return DoWork(w, c.Manager3().GetResource())
}

func demoManager3(w io.Writer, c *managers.Context) error {
	for i := 0; i < 2; i++ {
		if res := c.Manager3().GetResource(); res != nil {
			if err := DoWork(w, res); err != nil {
				return err
			}
		}
	}
	return nil
}

func demoManager4(w io.Writer, c *managers.Context) error {
	for i := 0; i < 2; i++ {
		if mgr := c.Manager4(); mgr != nil {
			if err := DoWork(w, mgr.GetResource()); err != nil {
				return err
			}
		}
	}
	return nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/validator"
)

type layoutReport struct {
	Desktop map[string][]string `yaml:"desktop"`
	Mobile  map[string][]string `yaml:"mobile"`
}

func newLayoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layout FILE",
		Short: "Show the container layout of a list of notifications",
		Long: `Parse FILE as a list of toast options and print the notification ids grouped by
desktop container and by mobile half, in input order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			list, err := toast.DecodeOptionsList(f)
			if err != nil {
				return err
			}

			catalog, err := a.loadCatalog()
			if err != nil {
				return err
			}

			var errs validator.ValidationErrors
			notifications := make([]toast.Notification, 0, len(list))
			for i, opts := range list {
				n, err := a.parse(opts, catalog)
				if err != nil {
					errs.Merge(fmt.Sprintf("[%d]", i), err)
					continue
				}
				notifications = append(notifications, n)
			}
			if err := errs.Err(); err != nil {
				a.logFailure(path, err)
				return fmt.Errorf("%w: %s", ErrValidationFailed, path)
			}

			desktop, err := toast.NotificationsForEachContainer(notifications)
			if err != nil {
				return err
			}
			mobile, err := toast.NotificationsForMobileView(notifications)
			if err != nil {
				return err
			}

			return writeYAML(a.out, layoutReport{
				Desktop: map[string][]string{
					string(toast.ContainerTopLeft):     ids(desktop.TopLeft),
					string(toast.ContainerTopRight):    ids(desktop.TopRight),
					string(toast.ContainerBottomLeft):  ids(desktop.BottomLeft),
					string(toast.ContainerBottomRight): ids(desktop.BottomRight),
				},
				Mobile: map[string][]string{
					"top":    ids(mobile.Top),
					"bottom": ids(mobile.Bottom),
				},
			})
		},
	}
}

func ids(ns []toast.Notification) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.ID
	}
	return out
}

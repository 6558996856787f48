package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/validator"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate toast option files",
		Long: `Validate each file as a single set of toast options and print the normalized
notification. Every invalid field is reported; the command exits non-zero when
any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.loadCatalog()
			if err != nil {
				return err
			}

			var reports []report
			failed := 0
			for _, path := range args {
				n, err := a.parseFile(path, catalog)
				if err != nil {
					failed++
					a.logFailure(path, err)
					continue
				}
				r, err := newReport(path, n)
				if err != nil {
					failed++
					a.logFailure(path, err)
					continue
				}
				reports = append(reports, r)
			}

			if len(reports) > 0 {
				if err := writeYAML(a.out, reports); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d file(s)", ErrValidationFailed, failed, len(args))
			}
			return nil
		},
	}
}

// loadCatalog reads the --types catalog, if one was given.
func (a *app) loadCatalog() ([]toast.UserDefinedType, error) {
	if a.typesFile == "" {
		return nil, nil
	}
	catalog, err := toast.LoadTypesFile(a.typesFile)
	if err != nil {
		return nil, err
	}
	a.log.Debug("type catalog loaded", logger.File(a.typesFile), "types", len(catalog))
	return catalog, nil
}

// parseFile decodes path and parses it. Catalog types are added to the
// userDefinedTypes the file declares itself; on a name clash the file's own
// definition wins.
func (a *app) parseFile(path string, catalog []toast.UserDefinedType) (toast.Notification, error) {
	f, err := os.Open(path)
	if err != nil {
		return toast.Notification{}, err
	}
	defer f.Close()

	opts, err := toast.DecodeOptions(f)
	if err != nil {
		return toast.Notification{}, err
	}
	return a.parse(opts, catalog)
}

func (a *app) parse(opts toast.Options, catalog []toast.UserDefinedType) (toast.Notification, error) {
	if opts == nil {
		opts = toast.Options{}
	}
	if len(catalog) > 0 {
		inline, err := toast.ParseUserDefinedTypes(opts[toast.KeyUserDefinedTypes])
		if err != nil {
			return toast.Notification{}, err
		}
		opts[toast.KeyUserDefinedTypes] = mergeTypes(inline, catalog)
	}

	n, err := toast.Parse(opts, a.defaults)
	if err != nil {
		return toast.Notification{}, err
	}
	a.log.Debug("notification validated",
		logger.NotificationID(n.ID),
		logger.ToastType(string(n.Type)),
		logger.Container(string(n.Container)),
	)
	return n, nil
}

func mergeTypes(inline, catalog []toast.UserDefinedType) []toast.UserDefinedType {
	merged := slices.Clone(inline)
	for _, udt := range catalog {
		if !slices.ContainsFunc(merged, func(t toast.UserDefinedType) bool { return t.Name == udt.Name }) {
			merged = append(merged, udt)
		}
	}
	return merged
}

func (a *app) logFailure(path string, err error) {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		a.log.Error("cannot validate file", logger.File(path), logger.Error(err))
		return
	}
	for _, e := range verrs {
		a.log.Warn(e.Message,
			logger.File(path),
			logger.Field(e.Field),
			logger.Event("invalid_option"),
		)
	}
	if errors.Is(err, toast.ErrUnknownType) {
		a.log.Info("register custom types with --types or the userDefinedTypes option", logger.File(path))
	}
}

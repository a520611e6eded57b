package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pipboot/pipboot/internal/cachedir"
	"github.com/pipboot/pipboot/internal/config"
	"github.com/pipboot/pipboot/internal/doctor"
	"github.com/pipboot/pipboot/internal/index"
	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/pyenv"
	"github.com/pipboot/pipboot/internal/update"
)

var checkForUpdate = update.Check

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, messages.DoctorHealthCheck)

			var allResults []doctor.Result

			configResults, settings := doctor.CheckConfig(config.RealSystem{}, runtime.GOOS)
			allResults = append(allResults, configResults...)

			allResults = append(allResults, updateCheckResult(cmd, settings))

			if settings != nil {
				interpResults, interp := doctor.CheckInterpreter(pyenv.RealSystem{}, settings.Python)
				allResults = append(allResults, interpResults...)

				if interp != nil {
					cacheResults, cacheRoot := doctor.CheckCache(cachedir.RealSystem{}, runtime.GOOS, interp.Version, settings.CacheDir)
					allResults = append(allResults, cacheResults...)
					if cacheRoot != "" {
						allResults = append(allResults, doctor.CheckDiskSpace(cacheRoot)...)
					}

					resolver := index.NewResolver(indexBaseURL(*settings))
					allResults = append(allResults, doctor.CheckIndex(resolver, interp.Version, settings.NoNetwork)...)
				}
			}

			hasFail := false
			for _, r := range allResults {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

// updateCheckResult builds the release-check result, skipping the network
// call when downloads are disabled.
func updateCheckResult(cmd *cobra.Command, settings *config.Settings) doctor.Result {
	result := doctor.Result{CheckName: messages.DoctorCheckNameUpdate}
	if settings != nil && settings.NoNetwork {
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateSkippedFmt, config.EnvNoNetwork)
		result.Recommendation = fmt.Sprintf(messages.DoctorUpdateSkippedRecommendFmt, config.EnvNoNetwork)
		return result
	}

	checked, err := checkForUpdate(cmd.Context(), Version)
	switch {
	case err != nil && update.IsRateLimitError(err):
		result.Status = doctor.StatusWarn
		result.Message = messages.DoctorUpdateRateLimited
	case err != nil:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateFailedFmt, err)
		result.Recommendation = messages.DoctorUpdateFailedRecommend
	case checked.CurrentIsDev:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateDevBuildFmt, checked.Latest)
		result.Recommendation = messages.DoctorUpdateDevBuildRecommend
	case checked.Outdated:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateAvailableFmt, checked.Latest, checked.Current)
		result.Recommendation = messages.DoctorUpdateAvailableRecommend
	default:
		result.Status = doctor.StatusOK
		result.Message = fmt.Sprintf(messages.DoctorUpToDateFmt, checked.Current)
	}
	return result
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/atlasledger/go-bank-recon/cmd/setup"
	helperFlag "github.com/atlasledger/go-bank-recon/internal/common/flag"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/deliveries/job"
	"github.com/atlasledger/go-bank-recon/internal/services"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to configuring and running a job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	j *job.Job
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdDate, "d", "", "job running date")
	runJobCmd.Flags().Int64P(runJobCmdCompanyID, "c", 0, "company id")
	runJobCmd.Flags().String(runJobCmdDateFrom, "", "transaction date lower bound")
	runJobCmd.Flags().String(runJobCmdDateTo, "", "transaction date upper bound")
	runJobCmd.Flags().StringP(runJobCmdFileName, "f", "", "file name")
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	if j == nil {
		// listing route names needs no live services
		j = job.New(config.Config{}, &services.Services{}, nil)
	}

	for version, l := range j.Routes {
		for name := range l {
			list := fmt.Sprintf("version=%s, name=%s", version, name)
			fmt.Println(list)
		}
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name} -v={job-version} -c={company-id}",
		Run:     runJob,
	}
	runJobCmdName      = "name"
	runJobCmdVersion   = "version"
	runJobCmdDate      = "date"
	runJobCmdCompanyID = "company"
	runJobCmdDateFrom  = "from"
	runJobCmdDateTo    = "to"
	runJobCmdFileName  = "file"
)

func runJob(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	date, _ := ccmd.Flags().GetString(runJobCmdDate)
	companyID, _ := ccmd.Flags().GetInt64(runJobCmdCompanyID)
	dateFrom, _ := ccmd.Flags().GetString(runJobCmdDateFrom)
	dateTo, _ := ccmd.Flags().GetString(runJobCmdDateTo)
	fileName, _ := ccmd.Flags().GetString(runJobCmdFileName)

	s, _, err := setup.Init("job")
	if err != nil {
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	defer func() {
		s.WriteDB.Close()
		s.ReadDB.Close()
		s.Cache.Close()
		s.RepoCloudStorage.Close()
	}()

	j = job.New(s.Config, s.Service, s.RepoCloudStorage)
	j.Start(ctx, helperFlag.Job{
		JobName:   name,
		Version:   version,
		Date:      date,
		CompanyID: companyID,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		FileName:  fileName,
	})
	xlog.Info(ctx, "job server stopped!")
}

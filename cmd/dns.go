package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"resiosctl/config"
	"resiosctl/core"
	"resiosctl/i18n"

	"github.com/spf13/cobra"
)

var (
	dnsWatch bool
	dnsLang  string
)

var dnsCmd = &cobra.Command{
	Use:   "dns",
	Short: "Resolve hostnames through the Cosmos server",
}

func printHostCheck(w io.Writer, msgs *i18n.Printer, res core.HostCheckResult) {
	switch {
	case res.Error != "":
		fmt.Fprintf(w, "%s: DNS lookup failed: %s\n", res.Host, res.Error)
	case res.IP != "":
		fmt.Fprintf(w, "%s: %s\n", res.Host, msgs.Messagef(i18n.KeyHostnamePointsTo, map[string]string{"hostIp": res.IP}))
	default:
		fmt.Fprintf(w, "%s: not a domain name, no lookup needed\n", res.Host)
	}
}

var dnsCheckCmd = &cobra.Command{
	Use:   "check [HOST]",
	Short: "Resolve HOST, or every line of stdin with --watch",
	Long: `Resolves HOST through the server's DNS endpoint. With --watch, hostnames
are read line by line from stdin and checked with the console debounce
(console.dns_debounce): only the latest line of a burst is looked up.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if dnsWatch {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newRemoteClient()
		if err != nil {
			return err
		}
		msgs := printerFor(dnsLang)
		out := cmd.OutOrStdout()

		if !dnsWatch {
			ctx, cancel := commandContext()
			defer cancel()
			printHostCheck(out, msgs, core.CheckHostname(ctx, client, strings.TrimSpace(args[0])))
			return nil
		}

		var (
			mu      sync.Mutex
			latest  string
			printed = make(chan struct{}, 1)
		)
		checker := core.NewHostnameChecker(client, config.AppConfig.Console.DNSDebounce, func(res core.HostCheckResult) {
			mu.Lock()
			printHostCheck(out, msgs, res)
			isLatest := res.Host == latest
			mu.Unlock()
			if isLatest {
				select {
				case printed <- struct{}{}:
				default:
				}
			}
		})
		defer checker.Stop()

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			host := strings.TrimSpace(scanner.Text())
			mu.Lock()
			latest = host
			mu.Unlock()
			select {
			case <-printed:
			default:
			}
			checker.Check(host)
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		// Wait for the last line's result before exiting.
		if latest != "" {
			wait := config.AppConfig.Console.DNSDebounce + config.AppConfig.Remote.Timeout + time.Second
			select {
			case <-printed:
			case <-time.After(wait):
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: no answer within %s\n", latest, wait)
			}
		}
		return nil
	},
}

func init() {
	dnsCheckCmd.Flags().BoolVarP(&dnsWatch, "watch", "w", false, "read hostnames from stdin and check them debounced")
	dnsCheckCmd.Flags().StringVar(&dnsLang, "lang", "", "message language (en, de); default is the stored locale")
	dnsCmd.AddCommand(dnsCheckCmd)
	rootCmd.AddCommand(dnsCmd)
}

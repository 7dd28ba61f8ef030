package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .kisslint.yaml config file",
	Long:  `Create a .kisslint.yaml configuration file in the current directory with the built-in defaults.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return writeDefaultConfig(cmd, defaultConfigPath, force)
	},
}

func writeDefaultConfig(cmd *cobra.Command, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

const defaultConfig = `# kisslint configuration
# Style guide: https://kisscommunity.bvnf.space/kiss/style-guide

verbose: false
quiet: false
color: false

# Linting settings
lint:
  strict: false        # exit 1 when any violation is found
  output-format: text  # text | json

# External checks run in each recipe before linting
precheck:
  skip: false
  kiss: kiss             # runs "kiss c"
  shellcheck: shellcheck # runs "shellcheck build"

# Rule tables (each list replaces the built-in one)
rules:
  always-available:
    - b3sum
    - baselayout
    - binutils
    - bison
    - busybox
    - bzip2
    - certs
    - curl
    - flex
    - gcc
    - git
    - gmp
    - kiss
    - libmpc
    - linux-headers
    - m4
    - make
    - mpfr
    - musl
    - openssl
    - pigz
    - xz
    - zlib
  make-only:
    - autoconf
    - automake
    - cmake
    - meson
    - nasm
    - rust
    - samurai
  compilers:
    - gcc
    - g++
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

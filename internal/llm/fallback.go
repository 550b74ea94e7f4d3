package llm

import (
	"fmt"
	"strings"
)

// Deterministic substitutes used when the provider is unconfigured or
// exhausted. They produce no network I/O.

func fallbackSummary(findingCount int) string {
	return fmt.Sprintf("Found %d security issues that require attention.", findingCount)
}

func fallbackRemedy(service string) string {
	return fmt.Sprintf("Review and remediate %s security configurations.", strings.ToUpper(service))
}

// fallbackCommands returns built-in command templates for a small set of
// services. Services without a template get no commands.
func fallbackCommands(service string, resourceIDs []string) []string {
	var commands []string
	switch service {
	case "s3":
		for _, rid := range firstN(resourceIDs, 3) {
			commands = append(commands,
				fmt.Sprintf("# Enable encryption for bucket %s\n", rid)+
					fmt.Sprintf("aws s3api put-bucket-encryption --bucket %s ", rid)+
					"--server-side-encryption-configuration "+
					`'{"Rules":[{"ApplyServerSideEncryptionByDefault":{"SSEAlgorithm":"AES256"}}]}'`)
		}
	case "ec2":
		commands = append(commands,
			"# Review security group rules\n"+
				"aws ec2 describe-security-groups --query "+
				"'SecurityGroups[?IpPermissions[?IpRanges[?CidrIp==`0.0.0.0/0`]]]'")
	}
	return commands
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

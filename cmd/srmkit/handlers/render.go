package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/srmkit/internal/provisioning"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(18)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	greenStyle = lipgloss.NewStyle().
			Foreground(colorGreen)
)

// renderNetworkConfig produces the styled summary of network init.
func renderNetworkConfig(rule, region string, cfg *provisioning.NetworkConfig, requests int) string {
	var b strings.Builder
	renderHeader(&b, "network", rule, region)
	renderNetworkSection(&b, cfg)
	renderFooter(&b, requests)
	return b.String()
}

// renderStorageConfig produces the styled summary of storage init.
func renderStorageConfig(rule, region string, cfg *provisioning.StorageConfig, requests int) string {
	var b strings.Builder
	renderHeader(&b, "storage", rule, region)

	b.WriteString(sectionStyle.Render("  File Storage"))
	b.WriteString("\n")
	renderRow(&b, "Share", cfg.ShareID)
	renderRow(&b, "Mount domain", cfg.MountDomain)
	renderRow(&b, "Mount target", greenStyle.Render(string(cfg.Action)))
	b.WriteString("\n")

	if cfg.Network != nil {
		renderNetworkSection(&b, cfg.Network)
	}
	renderFooter(&b, requests)
	return b.String()
}

func renderHeader(b *strings.Builder, command, rule, region string) {
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  srmkit %s: %s (%s)", command, rule, region)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")
}

func renderNetworkSection(b *strings.Builder, cfg *provisioning.NetworkConfig) {
	b.WriteString(sectionStyle.Render("  Network"))
	b.WriteString("\n")
	renderRow(b, "Network", cfg.NetworkID)
	renderRow(b, "Subnets", strings.Join(cfg.SubnetIDs, ", "))
	renderRow(b, "Security group", cfg.SecurityGroupID)
	if cfg.StorageSubnetID != "" {
		renderRow(b, "Storage subnet", fmt.Sprintf("%s (%s)", cfg.StorageSubnetID, cfg.StorageZoneID))
	}
	b.WriteString("\n")
}

func renderRow(b *strings.Builder, label, value string) {
	if value == "" {
		value = dimStyle.Render("-")
	}
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func renderFooter(b *strings.Builder, requests int) {
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d cloud API requests", requests)))
	b.WriteString("\n")
}

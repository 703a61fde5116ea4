// Copyright easylive1989, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/easylive1989/noteops/internal/archive"
	"github.com/easylive1989/noteops/internal/gist"
	"github.com/easylive1989/noteops/internal/markdown"
	"github.com/easylive1989/noteops/internal/medium"
	"github.com/easylive1989/noteops/internal/notion"
	"github.com/easylive1989/noteops/internal/postparse"
	"github.com/easylive1989/noteops/pkg/types"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Turn notes into Medium draft posts",
	Long: `Publish creates Medium drafts from notes. "publish page" reads a Notion
page over the API and converts its blocks to Markdown; "publish file"
parses a Markdown export, optionally hosting its code snippets as a
secret gist.

Drafts stay unpublished until reviewed on Medium.`,
}

// --- page subcommand ---

var publishPageCmd = &cobra.Command{
	Use:   "page <page-id>",
	Short: "Convert a Notion page into a Medium draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runPublishPage,
}

func runPublishPage(cmd *cobra.Command, args []string) error {
	cfg := publishConfig()

	notionToken, err := credential("NOTION_SECRET", "notion-secret")
	if err != nil {
		return err
	}
	mediumClient, err := mediumFromEnv(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	nc := notion.NewClient(notionToken, cfg.HTTPConfig)

	page, err := nc.GetPage(ctx, args[0])
	if err != nil {
		return fmt.Errorf("fetching page: %w", err)
	}
	blocks, err := nc.GetBlockChildren(ctx, args[0])
	if err != nil {
		return fmt.Errorf("fetching page blocks: %w", err)
	}

	title := markdown.Title(page.Properties)
	if title == "" {
		title = args[0]
	}
	body := markdown.Document(page.Properties, blocks)

	return createDraft(ctx, mediumClient, title, body, nil)
}

// --- file subcommand ---

var publishFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Convert an exported Markdown note into a Medium draft",
	Long: `File parses a Markdown file exported from Notion: page metadata lines
are dropped, the tag line becomes the post tags, and fenced code blocks
become snippet files. With --gist the snippets are uploaded as one
secret gist and each snippet reference in the body is replaced by the
gist embed script.`,
	Args: cobra.ExactArgs(1),
	RunE: runPublishFile,
}

func runPublishFile(cmd *cobra.Command, args []string) error {
	cfg := publishConfig()
	useGist, _ := cmd.Flags().GetBool("gist")

	mediumClient, err := mediumFromEnv(cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening note file: %w", err)
	}
	defer f.Close()

	post, err := postparse.New(cfg).Parse(f)
	if err != nil {
		return fmt.Errorf("parsing note file: %w", err)
	}

	ctx := context.Background()
	body := post.Body

	if useGist && len(post.Snippets) > 0 {
		if cfg.GistUser == "" {
			return fmt.Errorf("publish.gist_user is not configured")
		}
		githubToken, err := credential("GITHUB_TOKEN", "github-token")
		if err != nil {
			return err
		}

		gc := gist.NewClient(githubToken, cfg.HTTPConfig)
		gistID, err := gc.CreateSecret(ctx, post.Title, post.Snippets)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "created gist %s (%d snippets)\n", gistID, len(post.Snippets))

		for name := range post.Snippets {
			body = strings.ReplaceAll(body, name, gist.EmbedScript(cfg.GistUser, gistID, name))
		}
	}

	return createDraft(ctx, mediumClient, post.Title, body, post.Tags)
}

// --- shared helpers ---

func mediumFromEnv(cfg types.PublishConfig) (*medium.Client, error) {
	token, err := credential("MEDIUM_TOKEN", "medium-token")
	if err != nil {
		return nil, err
	}
	userID, err := credential("MEDIUM_USER_ID", "medium-user-id")
	if err != nil {
		return nil, err
	}
	return medium.NewClient(token, userID, cfg.HTTPConfig), nil
}

func createDraft(ctx context.Context, mc *medium.Client, title, body string, tags []string) error {
	info, err := mc.CreateDraft(ctx, title, body, tags)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "created draft %q: %s\n", title, info.URL)
	archiveSave(ctx, archive.KindDraft, title, body)
	return nil
}

func init() {
	publishFileCmd.Flags().Bool("gist", false, "host code snippets as a secret gist and embed them")

	publishCmd.AddCommand(publishPageCmd)
	publishCmd.AddCommand(publishFileCmd)
	rootCmd.AddCommand(publishCmd)
}

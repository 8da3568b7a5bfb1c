package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/atelierhq/atelier/internal/client"
	"github.com/atelierhq/atelier/internal/domain/asset"
	"github.com/atelierhq/atelier/internal/domain/invite"
	"github.com/atelierhq/atelier/internal/domain/project"
)

func apiClient() *client.Client {
	return client.New(cfg.API.BaseURL, cfg.API.Token, logger)
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your projects and the ones shared with you",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := project.NewService(client.NewProjectClient(apiClient()), logger)
		lists, err := svc.LoadAll(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tSECTION\tDEADLINE")
		printProjects(tw, lists.OwnedActive, "active")
		printProjects(tw, lists.OwnedArchived, "archived")
		printProjects(tw, lists.Shared, "shared")
		return tw.Flush()
	},
}

func printProjects(tw *tabwriter.Writer, projects []project.Project, section string) {
	for _, p := range projects {
		deadline := "-"
		if p.Deadline != nil {
			deadline = p.Deadline.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, section, deadline)
	}
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		deadlineStr, _ := cmd.Flags().GetString("deadline")

		var deadline *time.Time
		if deadlineStr != "" {
			d, err := time.Parse("2006-01-02", deadlineStr)
			if err != nil {
				return fmt.Errorf("invalid deadline %q: %w", deadlineStr, err)
			}
			deadline = &d
		}

		svc := project.NewService(client.NewProjectClient(apiClient()), logger)
		p, err := svc.Create(cmd.Context(), args[0], description, deadline)
		if err != nil {
			return err
		}
		fmt.Printf("created project %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var projectsArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := project.NewService(client.NewProjectClient(apiClient()), logger)
		p, err := svc.SetArchived(cmd.Context(), args[0], true)
		if err != nil {
			return err
		}
		fmt.Printf("archived project %s\n", p.Name)
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project and everything in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := project.NewService(client.NewProjectClient(apiClient()), logger)
		if err := svc.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("project deleted")
		return nil
	},
}

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage project assets",
}

var assetsListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List a project's assets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := asset.NewService(client.NewAssetClient(apiClient()), logger)
		assets, err := svc.List(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tFILENAME\tVERSION\tSTATUS")
		for _, a := range assets {
			fmt.Fprintf(tw, "%s\t%s\tv%d\t%s\n", a.ID, a.OriginalFilename, a.Version, a.Status)
		}
		return tw.Flush()
	},
}

var invitesCmd = &cobra.Command{
	Use:   "invites",
	Short: "Manage collaboration invites",
}

var invitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your pending invites",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := invite.NewService(client.NewInviteClient(apiClient()), logger)
		pending, err := svc.Pending(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tPROJECT\tFROM")
		for _, inv := range pending {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", inv.ID, inv.Project.Name, inv.InvitedBy.Label())
		}
		return tw.Flush()
	},
}

var invitesSendCmd = &cobra.Command{
	Use:   "send <project-id> <email>",
	Short: "Invite a collaborator to a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := invite.NewService(client.NewInviteClient(apiClient()), logger)
		inv, err := svc.Send(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("invited %s to %s\n", inv.InvitedEmail, inv.Project.Name)
		return nil
	},
}

var invitesAcceptCmd = &cobra.Command{
	Use:   "accept <id>",
	Short: "Accept a pending invite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := invite.NewService(client.NewInviteClient(apiClient()), logger)
		inv, err := svc.Accept(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("joined %s\n", inv.Project.Name)
		return nil
	},
}

var invitesDeclineCmd = &cobra.Command{
	Use:   "decline <id>",
	Short: "Decline a pending invite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := invite.NewService(client.NewInviteClient(apiClient()), logger)
		if _, err := svc.Decline(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("invite declined")
		return nil
	},
}

func init() {
	projectsCreateCmd.Flags().String("description", "", "project description")
	projectsCreateCmd.Flags().String("deadline", "", "deadline as YYYY-MM-DD")

	projectsCmd.AddCommand(projectsListCmd, projectsCreateCmd, projectsArchiveCmd, projectsDeleteCmd)
	assetsCmd.AddCommand(assetsListCmd)
	invitesCmd.AddCommand(invitesListCmd, invitesSendCmd, invitesAcceptCmd, invitesDeclineCmd)
}

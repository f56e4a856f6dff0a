package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vetdesk/client-go/internal/utils"
	"github.com/vetdesk/client-go/patients"
)

func newPatientsCmd() *cobra.Command {
	root := &cobra.Command{Use: "patients", Short: "Manage patient records"}
	root.AddCommand(newPatientsListCmd())
	root.AddCommand(newPatientsGetCmd())
	root.AddCommand(newPatientsCreateCmd())
	root.AddCommand(newPatientsUpdateCmd())
	root.AddCommand(newPatientsDeleteCmd())
	return root
}

func newPatientsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all patients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			list, err := a.patients.List(context.Background())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(list))
			for _, p := range list {
				rows = append(rows, []string{
					strconv.FormatInt(p.ID, 10), p.PetName, p.Species, p.Breed, p.OwnerFullName,
				})
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "PET", "SPECIES", "BREED", "OWNER"}, rows))
			return nil
		},
	}
}

func newPatientsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := a.patients.Get(context.Background(), id)
			if err != nil {
				return err
			}

			pairs := [][2]string{
				{"pet", p.PetName},
				{"species", p.Species},
				{"breed", p.Breed},
				{"gender", p.Gender},
				{"born", p.DateOfBirth},
				{"chip", p.ChipNumber},
				{"owner", p.OwnerFullName},
				{"owner email", p.OwnerEmail},
				{"owner phone", p.OwnerPhone},
				{"history", p.MedicalHistory},
				{"allergies", p.Allergies},
			}
			if p.Weight != nil {
				pairs = append(pairs, [2]string{"weight", fmt.Sprintf("%.1f kg", *p.Weight)})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(p.DisplayName))
			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderKeyValues(pairs))
			return nil
		},
	}
}

func newPatientsCreateCmd() *cobra.Command {
	var input patients.CreateInput
	var weight float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("weight") {
				input.Weight = utils.Ptr(weight)
			}
			p, err := a.patients.Create(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(),
				successStyle.Render(fmt.Sprintf("created patient %d (%s)", p.ID, p.PetName)))
			return nil
		},
	}
	cmd.Flags().StringVar(&input.PetName, "pet", "", "pet name (required)")
	cmd.Flags().StringVar(&input.Species, "species", "", "species, e.g. dog or cat (required)")
	cmd.Flags().StringVar(&input.Breed, "breed", "", "breed")
	cmd.Flags().StringVar(&input.Color, "color", "", "color")
	cmd.Flags().StringVar(&input.Gender, "gender", "", "male|female|unknown")
	cmd.Flags().StringVar(&input.DateOfBirth, "born", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&input.ChipNumber, "chip", "", "microchip number")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	cmd.Flags().StringVar(&input.OwnerFirstName, "owner-first", "", "owner first name (required)")
	cmd.Flags().StringVar(&input.OwnerLastName, "owner-last", "", "owner last name (required)")
	cmd.Flags().StringVar(&input.OwnerEmail, "owner-email", "", "owner email")
	cmd.Flags().StringVar(&input.OwnerPhone, "owner-phone", "", "owner phone")
	cmd.Flags().StringVar(&input.OwnerAddress, "owner-address", "", "owner address")
	cmd.Flags().StringVar(&input.MedicalHistory, "history", "", "medical history notes")
	cmd.Flags().StringVar(&input.Allergies, "allergies", "", "known allergies")
	cmd.Flags().StringVar(&input.SpecialNotes, "notes", "", "special care instructions")
	return cmd
}

func newPatientsUpdateCmd() *cobra.Command {
	var petName, species, breed, gender, ownerPhone, ownerEmail, history string
	var weight float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a patient (only provided fields are sent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch patients.UpdateInput
			flags := cmd.Flags()
			if flags.Changed("pet") {
				patch.PetName = utils.Ptr(petName)
			}
			if flags.Changed("species") {
				patch.Species = utils.Ptr(species)
			}
			if flags.Changed("breed") {
				patch.Breed = utils.Ptr(breed)
			}
			if flags.Changed("gender") {
				patch.Gender = utils.Ptr(gender)
			}
			if flags.Changed("weight") {
				patch.Weight = utils.Ptr(weight)
			}
			if flags.Changed("owner-phone") {
				patch.OwnerPhone = utils.Ptr(ownerPhone)
			}
			if flags.Changed("owner-email") {
				patch.OwnerEmail = utils.Ptr(ownerEmail)
			}
			if flags.Changed("history") {
				patch.MedicalHistory = utils.Ptr(history)
			}

			p, err := a.patients.Update(context.Background(), id, patch)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(),
				successStyle.Render(fmt.Sprintf("updated patient %d (%s)", p.ID, p.PetName)))
			return nil
		},
	}
	cmd.Flags().StringVar(&petName, "pet", "", "pet name")
	cmd.Flags().StringVar(&species, "species", "", "species")
	cmd.Flags().StringVar(&breed, "breed", "", "breed")
	cmd.Flags().StringVar(&gender, "gender", "", "male|female|unknown")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	cmd.Flags().StringVar(&ownerPhone, "owner-phone", "", "owner phone")
	cmd.Flags().StringVar(&ownerEmail, "owner-email", "", "owner email")
	cmd.Flags().StringVar(&history, "history", "", "medical history notes")
	return cmd
}

func newPatientsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a patient record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.patients.Delete(context.Background(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), fmt.Sprintf("deleted patient %d", id))
			return nil
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

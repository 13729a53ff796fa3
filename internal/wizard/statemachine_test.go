package wizard_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/roleready/roleready/internal/wizard"
)

func at(step wizard.Step, question int) wizard.Position {
	return wizard.Position{Step: step, Question: question}
}

var _ = Describe("Controller state machine", func() {
	var c *wizard.Controller

	BeforeEach(func() {
		c = wizard.New(wizard.WithIDGenerator(&wizard.CounterGenerator{Prefix: "e"}))
	})

	It("starts on the first profile question with empty data", func() {
		Expect(c.Position()).To(Equal(at(wizard.StepProfile, 0)))
		Expect(c.Skills()).To(BeEmpty())
		Expect(c.Education()).To(BeEmpty())
		Expect(c.WorkExperience()).To(BeEmpty())
		Expect(c.Template()).To(BeEmpty())
	})

	Context("when the name is blank", func() {
		DescribeTable("the gate stays closed",
			func(name string) {
				c.SetBasicInfoField(wizard.FieldName, name)
				Expect(c.CanAdvanceQuestion()).To(BeFalse())
				Expect(c.AdvanceQuestion()).To(BeFalse())
				Expect(c.AdvanceStep()).To(BeFalse())
				Expect(c.Position()).To(Equal(at(wizard.StepProfile, 0)))
			},
			Entry("empty", ""),
			Entry("spaces", "   "),
		)

		It("opens once a name is entered", func() {
			c.SetBasicInfoField(wizard.FieldName, "Jane Doe")
			Expect(c.CanAdvanceQuestion()).To(BeTrue())
		})
	})

	Context("with name and email answered", func() {
		BeforeEach(func() {
			c.SetBasicInfoField(wizard.FieldName, "Jane Doe")
			c.SetBasicInfoField(wizard.FieldEmail, "jane@example.com")
		})

		It("walks all six questions and then enters the target role step", func() {
			for q := 1; q < wizard.QuestionCount; q++ {
				Expect(c.AdvanceQuestion()).To(BeTrue())
				Expect(c.Position()).To(Equal(at(wizard.StepProfile, q)))
			}
			Expect(c.AdvanceQuestion()).To(BeTrue())
			Expect(c.Position()).To(Equal(at(wizard.StepTargetRole, 0)))
		})

		It("never leaves the step range", func() {
			for range 10 {
				c.AdvanceStep()
			}
			Expect(c.Step()).To(Equal(wizard.StepTemplate))
			for range 10 {
				c.RetreatStep()
			}
			Expect(c.Step()).To(Equal(wizard.StepProfile))
		})

		It("restarts the profile questions when stepping back", func() {
			for c.Step() == wizard.StepProfile {
				c.AdvanceQuestion()
			}
			Expect(c.RetreatStep()).To(BeTrue())
			Expect(c.Position()).To(Equal(at(wizard.StepProfile, 0)))
		})

		It("keeps the question index at zero outside the profile step", func() {
			c.AdvanceStep()
			Expect(c.AdvanceQuestion()).To(BeFalse())
			Expect(c.RetreatQuestion()).To(BeFalse())
			Expect(c.Position()).To(Equal(at(wizard.StepTargetRole, 0)))
			c.AdvanceStep()
			Expect(c.Position()).To(Equal(at(wizard.StepTemplate, 0)))
		})
	})

	Describe("skills", func() {
		It("is a duplicate free set in insertion order", func() {
			Expect(c.AddSkill("React")).To(BeTrue())
			Expect(c.AddSkill("React")).To(BeFalse())
			Expect(c.AddSkill("react")).To(BeTrue())
			Expect(c.Skills()).To(Equal([]string{"React", "react"}))
		})

		It("ignores removal of an absent skill", func() {
			c.AddSkill("Go")
			Expect(c.RemoveSkill("Rust")).To(BeFalse())
			Expect(c.Skills()).To(ConsistOf("Go"))
		})
	})

	Describe("entries", func() {
		It("issues unique ids and removes only the matching entry", func() {
			a := c.AddEducationEntry()
			b := c.AddEducationEntry()
			Expect(a).NotTo(Equal(b))

			c.UpdateEducationEntry(b, wizard.FieldSchool, "MIT")
			c.RemoveEducationEntry(a)

			Expect(c.Education()).To(HaveLen(1))
			Expect(c.Education()[0].ID).To(Equal(b))
			Expect(c.Education()[0].School).To(Equal("MIT"))
		})

		It("treats unknown ids as no-ops", func() {
			id := c.AddWorkEntry()
			c.UpdateWorkEntry("missing", wizard.FieldCompany, "Acme")
			c.RemoveWorkEntry("missing")
			Expect(c.WorkExperience()).To(Equal([]wizard.WorkEntry{{ID: id}}))
		})
	})

	Describe("finalize", func() {
		It("captures a complete run", func() {
			c.SetBasicInfoField(wizard.FieldName, "Ada Lovelace")
			c.SetBasicInfoField(wizard.FieldEmail, "ada@example.com")
			for c.Step() == wizard.StepProfile {
				Expect(c.AdvanceQuestion()).To(BeTrue())
			}
			c.SetTargetRole(wizard.TargetRole{Title: "Computer Scientist"})
			c.AdvanceStep()
			c.SelectTemplate(wizard.TemplateTech)

			snap := c.Finalize()

			Expect(snap.Profile.BasicInfo.Name).To(Equal("Ada Lovelace"))
			Expect(snap.TargetRole.Title).To(Equal("Computer Scientist"))
			Expect(snap.Template).To(Equal(wizard.TemplateTech))
			Expect(snap.Profile.Skills).To(BeEmpty())
			Expect(snap.Profile.Education).To(BeEmpty())
			Expect(snap.Profile.WorkExperience).To(BeEmpty())
			Expect(snap.Profile.Certifications).To(BeEmpty())
			Expect(snap.Profile.Languages).To(BeEmpty())
		})
	})
})

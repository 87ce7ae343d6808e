package swiftmsg

// Block3 convenience readers. Tag 119 carries the validation flag; "STP"
// signals straight-through processing was requested for the message.
const (
	TagServiceIDField     = "103"
	TagBankingPriority    = "108"
	TagServiceTypeID      = "111"
	TagUserReference      = "113"
	TagUniqueEndToEndRef  = "121"
	TagValidationFlag     = "119"
	TagRelatedReference   = "121"
	TagAddresseeInfo      = "165"
	ValidationFlagSTP     = "STP"
)

func (m *Message) Block3Tag(tag string) (string, bool) { return Tag(m.Block3, tag) }

// IsStraightThroughProcessing reports whether block 3 carries {119:STP}.
func (m *Message) IsStraightThroughProcessing() bool {
	v, ok := m.Block3Tag(TagValidationFlag)
	return ok && v == ValidationFlagSTP
}

// UETR returns the unique end-to-end transaction reference carried in
// block 3 tag 121, when present.
func (m *Message) UETR() (string, bool) { return m.Block3Tag(TagUniqueEndToEndRef) }

// Block5 trailer tags: checksum, test-and-training, possible duplicate
// emission, and possible duplicate message.
const (
	TagChecksum           = "CHK"
	TagTestAndTraining    = "TNG"
	TagPossibleDuplicate  = "PDE"
	TagPossibleDuplicateMsg = "PDM"
)

func (m *Message) Block5Tag(tag string) (string, bool) { return Tag(m.Block5, tag) }

// IsTestAndTraining reports whether the trailer carries {TNG:}.
func (m *Message) IsTestAndTraining() bool {
	_, ok := m.Block5Tag(TagTestAndTraining)
	return ok
}

// IsPossibleDuplicate reports whether the trailer flags this message as a
// possible duplicate emission or a possible duplicate of a prior message.
func (m *Message) IsPossibleDuplicate() bool {
	if _, ok := m.Block5Tag(TagPossibleDuplicate); ok {
		return true
	}
	_, ok := m.Block5Tag(TagPossibleDuplicateMsg)
	return ok
}

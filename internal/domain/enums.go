package domain

// AttributeType is the declared value type of an attribute.
type AttributeType string

const (
	AttributeTypeString  AttributeType = "string"
	AttributeTypeNumber  AttributeType = "number"
	AttributeTypeBoolean AttributeType = "boolean"
	AttributeTypeDate    AttributeType = "date"
	AttributeTypeJSON    AttributeType = "json"
)

func (t AttributeType) String() string { return string(t) }

func (t AttributeType) IsValid() bool {
	switch t {
	case AttributeTypeString, AttributeTypeNumber, AttributeTypeBoolean, AttributeTypeDate, AttributeTypeJSON:
		return true
	}
	return false
}

// InteractionAction tags an entry in an entity's interaction log.
type InteractionAction string

const (
	ActionView               InteractionAction = "view"
	ActionEdit               InteractionAction = "edit"
	ActionAttributeRequested InteractionAction = "attribute_requested"
	ActionAttributeFilled    InteractionAction = "attribute_filled"
)

func (a InteractionAction) String() string { return string(a) }

func (a InteractionAction) IsValid() bool {
	switch a {
	case ActionView, ActionEdit, ActionAttributeRequested, ActionAttributeFilled:
		return true
	}
	return false
}

// IdentityProvider names the credential verifier that authenticated a caller.
type IdentityProvider string

const (
	IdentityProviderLocal          IdentityProvider = "local"
	IdentityProviderSupabaseJWT    IdentityProvider = "supabase_jwt"
	IdentityProviderSupabaseRemote IdentityProvider = "supabase"
)

func (p IdentityProvider) String() string { return string(p) }

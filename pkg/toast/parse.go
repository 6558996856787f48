package toast

import "github.com/dmitrymomot/toastkit/pkg/validator"

// Parse validates opts and returns the normalized notification. Omitted
// options take their values from defaults. Every failing field is reported in
// a single validator.ValidationErrors.
//
// Built-in types are case-insensitive and stored in lower case. Any other type
// must match a user-defined type exactly and keeps its spelling.
func Parse(opts Options, defaults Defaults) (Notification, error) {
	var (
		n    Notification
		errs validator.ValidationErrors
		err  error
	)

	n.ID, err = ValidateID(opts[KeyID])
	errs.Merge(KeyID, err)

	n.UserDefinedTypes, err = ParseUserDefinedTypes(opts[KeyUserDefinedTypes])
	errs.Merge(KeyUserDefinedTypes, err)

	n.Content, err = ValidateContent(opts)
	errs.Merge(KeyContent, err)

	n.Title, err = ValidateTitle(opts)
	errs.Merge(KeyTitle, err)

	n.Message, err = ValidateMessage(opts)
	errs.Merge(KeyMessage, err)

	n.Type, err = parseType(opts, n.UserDefinedTypes)
	errs.Merge(KeyType, err)

	n.Container, err = ValidateContainer(opts[KeyContainer])
	if err == nil {
		err = validator.Apply(validator.OneOf(KeyContainer, n.Container, Containers()...))
	}
	errs.Merge(KeyContainer, err)

	rawInsert := opts[KeyInsert]
	if rawInsert == nil && defaults.Insert != "" {
		rawInsert = string(defaults.Insert)
	}
	n.Insert, err = ValidateInsert(rawInsert)
	errs.Merge(KeyInsert, err)

	n.Width, err = ValidateWidth(opts[KeyWidth])
	errs.Merge(KeyWidth, err)

	n.Dismissable, err = validateDismissable(opts[KeyDismissable], Dismissable{
		Click: defaults.DismissClick,
		Touch: defaults.DismissTouch,
	})
	errs.Merge(KeyDismissable, err)

	n.DismissIcon, err = ValidateDismissIcon(opts[KeyDismiss])
	errs.Merge(KeyDismiss, err)

	n.TimeoutDismiss, err = ValidateTimeoutDismiss(opts[KeyTimeoutDismiss])
	errs.Merge(KeyTimeoutDismiss, err)

	n.AnimationIn, err = ValidateAnimation(KeyAnimationIn, opts[KeyAnimationIn])
	errs.Merge(KeyAnimationIn, err)

	n.AnimationOut, err = ValidateAnimation(KeyAnimationOut, opts[KeyAnimationOut])
	errs.Merge(KeyAnimationOut, err)

	n.SlidingEnter, err = validateTransition(KeySlidingEnter, opts[KeySlidingEnter], defaults.SlidingEnter)
	errs.Merge(KeySlidingEnter, err)

	n.SlidingExit, err = validateTransition(KeySlidingExit, opts[KeySlidingExit], defaults.SlidingExit)
	errs.Merge(KeySlidingExit, err)

	n.TouchRevert, err = validateTransition(KeyTouchRevert, opts[KeyTouchRevert], defaults.TouchRevert)
	errs.Merge(KeyTouchRevert, err)

	n.TouchSlidingExit, err = ValidateTouchSlidingExit(opts[KeyTouchSlidingExit], defaults.TouchSlidingExit)
	errs.Merge(KeyTouchSlidingExit, err)

	if err := errs.Err(); err != nil {
		return Notification{}, err
	}
	return n, nil
}

func parseType(opts Options, defined []UserDefinedType) (Type, error) {
	t, err := ValidateType(opts)
	if err != nil || t == "" {
		return t, err
	}
	if err := ValidateUserDefinedTypes(opts, defined); err != nil {
		return "", err
	}
	if t.IsBuiltin() {
		return t, nil
	}
	return Type(opts[KeyType].(string)), nil
}

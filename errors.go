package contact

import "strings"

//errDecorate is a helper that asserts that the error implements Error and
//decorates it with the caller's name before returning it. Errors from
//outside the library are wrapped into a CError first.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		err2 = CError{err.Error(), []string{caller}}
		return err2
	}
	err2.Decorate(caller)
	return err2
}

//CError (Contacts Error) is the concrete error type for the contact
//pipeline. It fullfills the Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds new information to the error
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//History returns the decoration slice joined into one string, for logging.
func (err CError) History() string {
	return strings.Join(err.deco, ", ")
}

// MIT License
//
// Copyright (c) 2021 TFG Co
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package validations

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/topfreegames/payout/internal/core/entities/account"
)

const (
	statementDescriptorMinLength = 5
	statementDescriptorMaxLength = 22
	statementDescriptorForbidden = `<>\'"`
)

var (
	Validate *validator.Validate
	uni      *ut.UniversalTranslator
)

func RegisterValidations() error {
	Validate = validator.New()
	english := en.New()
	uni = ut.New(english, english)
	translator := GetDefaultTranslator()
	_ = enTranslations.RegisterDefaultTranslations(Validate, translator)

	err := Validate.RegisterValidation("statement_descriptor", statementDescriptorValidate)
	if err != nil {
		return errors.New("could not register statementDescriptorValidate")
	}
	addTranslation(Validate, "statement_descriptor", "{0} must have between 5 and 22 characters, at least one letter and none of < > \\ ' \"")

	err = Validate.RegisterValidation("account_type", accountTypeValidate)
	if err != nil {
		return errors.New("could not register accountTypeValidate")
	}
	addTranslation(Validate, "account_type", "{0} must be one of the following options: stripe_managed_account")

	err = Validate.RegisterValidation("account_entity", accountEntityValidate)
	if err != nil {
		return errors.New("could not register accountEntityValidate")
	}
	addTranslation(Validate, "account_entity", "{0} must be one of the following options: dasher, merchant")

	return nil
}

func GetDefaultTranslator() ut.Translator {
	translator, _ := uni.GetTranslator("en")
	return translator
}

// TranslateErrors joins every field error of a validation failure into a
// single readable message.
func TranslateErrors(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	translator := GetDefaultTranslator()
	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldErr.Translate(translator))
	}

	return strings.Join(messages, "; ")
}

func statementDescriptorValidate(fl validator.FieldLevel) bool {
	return IsStatementDescriptorValid(fl.Field().String())
}

func accountTypeValidate(fl validator.FieldLevel) bool {
	return account.IsAccountTypeSupported(fl.Field().String())
}

func accountEntityValidate(fl validator.FieldLevel) bool {
	return account.IsEntitySupported(fl.Field().String())
}

func addTranslation(validate *validator.Validate, tag string, errMessage string) {
	registerFn := func(ut ut.Translator) error {
		return ut.Add(tag, errMessage, false)
	}

	transFn := func(ut ut.Translator, fieldError validator.FieldError) string {
		param := fieldError.Param()
		tag := fieldError.Tag()

		t, err := ut.T(tag, fieldError.Field(), param)
		if err != nil {
			return fieldError.(error).Error()
		}
		return t
	}

	_ = validate.RegisterTranslation(tag, GetDefaultTranslator(), registerFn, transFn)
}

// IsStatementDescriptorValid checks the text shown on the bank statement of
// the account owner. The card networks limit it to 22 characters and reject
// a few markup characters; '*' is accepted as the prefix separator.
func IsStatementDescriptorValid(descriptor string) bool {
	length := utf8.RuneCountInString(descriptor)
	if length < statementDescriptorMinLength || length > statementDescriptorMaxLength {
		return false
	}

	if strings.ContainsAny(descriptor, statementDescriptorForbidden) {
		return false
	}

	return strings.IndexFunc(descriptor, unicode.IsLetter) >= 0
}

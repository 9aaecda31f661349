/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import (
	"errors"
)

// Sentinel errors shared by the sample and bootstrap packages.
// They are wrapped with additional context at the call site,
// so callers should compare with errors.Is.
var ErrBadConfig = errors.New("configuration parameters are not valid")
var ErrNoConvergence = errors.New("sampling did not converge within the given bounds")
var ErrRejectionExhausted = errors.New("proposal budget exhausted")
var ErrInsufficientData = errors.New("not enough data for the requested estimate")
var ErrDegenerateJackknife = errors.New("jackknife values are all identical")
